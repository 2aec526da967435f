package dao

import (
	"gridstead-backend/models"

	"gorm.io/gorm"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db  *gorm.DB
	ids *idSequence
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	d := &UserDAO{db: db, ids: &idSequence{}}
	var last uint64
	db.Model(&models.User{}).Select("COALESCE(MAX(id), 0)").Scan(&last)
	d.ids.seed(last)
	return d
}

// WithTx returns a DAO bound to the given transaction handle. The id
// sequence is shared so ids stay unique across handles.
func (d *UserDAO) WithTx(tx *gorm.DB) *UserDAO {
	return &UserDAO{db: tx, ids: d.ids}
}

// CreateUser creates a new user at the given spawn tile.
func (d *UserDAO) CreateUser(name, wallet string, location models.Tile) (*models.User, error) {
	user := &models.User{
		ID:       d.ids.next(),
		Name:     name,
		Wallet:   wallet,
		Location: location,
	}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id
func (d *UserDAO) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := d.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByName retrieves a user by display name
func (d *UserDAO) GetUserByName(name string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByWallet retrieves a user by wallet address
func (d *UserDAO) GetUserByWallet(wallet string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("wallet = ?", wallet).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserLocation moves a user to the given tile.
func (d *UserDAO) UpdateUserLocation(id uint64, location models.Tile) error {
	return d.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"loc_col": location.Col,
			"loc_row": location.Row,
		}).Error
}

// ListUsers retrieves all users
func (d *UserDAO) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
