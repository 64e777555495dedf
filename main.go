package main

import (
	"fmt"
	"log"

	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/config"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/database"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/logging"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/router"
	"github.com/AlinaKhan14/DLBCSPJWD01-XpenseMate/internal/store"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Setup(cfg.Log.Level)

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		log.Fatalf("seed categories: %v", err)
	}

	r := router.SetupRouter(cfg, store.New(db), logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
