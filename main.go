package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"gridstead-backend/config"
	"gridstead-backend/controller"
	"gridstead-backend/dao"
	"gridstead-backend/logic"
	"gridstead-backend/middleware"
	"gridstead-backend/models"
	"gridstead-backend/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.Construction{}, &models.Transaction{})

	// Initialize wallet bridge relay client (optional)
	var relayClient *pkg.RelayClient
	if config.GlobalConfig.BridgeConfigured() {
		relayClient, err = pkg.NewRelayClient(
			config.GlobalConfig.Relay.RelayURL,
			config.GlobalConfig.Relay.VaultPubkey,
		)
		if err != nil {
			log.Fatalf("Failed to initialize relay client: %v", err)
		}
	}

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	constructionDAO := dao.NewConstructionDAO(db)
	txDAO := dao.NewTransactionDAO(db)

	// Initialize the world coordinator
	world := logic.NewWorld(db, userDAO, constructionDAO, txDAO, relayClient,
		rand.Float64, config.GlobalConfig.Game.SpawnExtent)

	// Initialize Controllers
	userCtrl := controller.NewUserController(world)
	worldCtrl := controller.NewWorldController(world)
	bridgeCtrl := controller.NewBridgeController(world)

	// Start deposit event listener in a goroutine
	if relayClient != nil {
		go bridgeCtrl.StartBridgeServices()
	}

	// Setup Gin router
	r := gin.Default()
	r.Use(middleware.RequestID)
	r.POST("/register", userCtrl.Register)
	r.GET("/user", userCtrl.GetUser)
	r.GET("/balance", userCtrl.GetBalance)
	r.GET("/transactions", userCtrl.GetTransactions)
	r.POST("/deposit", userCtrl.Deposit)
	r.POST("/move", worldCtrl.Move)
	r.POST("/construct", worldCtrl.Construct)
	r.GET("/construct", worldCtrl.GetConstructions)
	r.GET("/sync", worldCtrl.Sync)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
