package controller

import (
	"errors"
	"net/http"
	"strconv"

	"gridstead-backend/logic"

	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests
type UserController struct {
	world *logic.World
}

func NewUserController(world *logic.World) *UserController {
	return &UserController{world: world}
}

// Register handles POST /register
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
		Wallet   string `json:"wallet" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.world.Register(req.Username, req.Wallet)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "id": user.ID, "location": user.Location.String()})
}

// GetUser handles GET /user with one of ?id=, ?wallet=, ?username=
func (c *UserController) GetUser(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		userID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		user, balance, err := c.world.GetUserByID(userID)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"username": user.Name,
			"wallet":   user.Wallet,
			"balance":  balance,
			"location": user.Location.String(),
		})
		return
	}

	if wallet := ctx.Query("wallet"); wallet != "" {
		user, balance, err := c.world.GetUserByWallet(wallet)
		if err != nil {
			if errors.Is(err, logic.ErrUserNotFound) {
				// The UI polls with unregistered wallets; answer with an
				// empty profile rather than an error.
				ctx.JSON(http.StatusOK, gin.H{"id": nil, "username": nil, "balance": 0, "location": nil})
				return
			}
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"username": user.Name,
			"balance":  balance,
			"location": user.Location.String(),
		})
		return
	}

	if username := ctx.Query("username"); username != "" {
		exists, err := c.world.UsernameExists(username)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"exists": exists})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "id, wallet or username is required"})
}

// GetBalance handles GET /balance?id=
func (c *UserController) GetBalance(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	balance, err := c.world.Balance(userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"balance": balance})
}

// GetTransactions handles GET /transactions with optional ?userId= or ?wallet=
func (c *UserController) GetTransactions(ctx *gin.Context) {
	var userID *int64
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		userID = &parsed
	}

	entries, err := c.world.Transactions(userID, ctx.Query("wallet"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Deposit handles POST /deposit
func (c *UserController) Deposit(ctx *gin.Context) {
	type Request struct {
		Wallet string `json:"wallet" binding:"required"`
		Amount *int64 `json:"amount" binding:"required"`
		Type   string `json:"type"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.world.RecordDeposit(req.Wallet, *req.Amount, req.Type); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"ok": true})
}
