package dao

import (
	"gridstead-backend/models"

	"gorm.io/gorm"
)

// TransactionDAO is the append-only ledger. Entries are created and read,
// never updated or deleted.
type TransactionDAO struct {
	db  *gorm.DB
	ids *idSequence
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	d := &TransactionDAO{db: db, ids: &idSequence{}}
	var last uint64
	db.Model(&models.Transaction{}).Select("COALESCE(MAX(id), 0)").Scan(&last)
	d.ids.seed(last)
	return d
}

// WithTx returns a DAO bound to the given transaction handle. The id
// sequence is shared so ordering holds across handles.
func (d *TransactionDAO) WithTx(tx *gorm.DB) *TransactionDAO {
	return &TransactionDAO{db: tx, ids: d.ids}
}

// Append writes a new ledger entry, assigning the next id.
func (d *TransactionDAO) Append(entry *models.Transaction) (*models.Transaction, error) {
	entry.ID = d.ids.next()
	if err := d.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// BalanceOf folds the ledger for one user. O(rows for that user); the
// ledger remains the only source of truth for balances.
func (d *TransactionDAO) BalanceOf(userID int64) (int64, error) {
	var balance int64
	err := d.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// ListByUser retrieves all ledger entries for a user in id order
func (d *TransactionDAO) ListByUser(userID int64) ([]models.Transaction, error) {
	var entries []models.Transaction
	if err := d.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByWallet retrieves all ledger entries for a wallet in id order
func (d *TransactionDAO) ListByWallet(wallet string) ([]models.Transaction, error) {
	var entries []models.Transaction
	if err := d.db.Where("wallet = ?", wallet).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAll retrieves the whole ledger in id order
func (d *TransactionDAO) ListAll() ([]models.Transaction, error) {
	var entries []models.Transaction
	if err := d.db.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
