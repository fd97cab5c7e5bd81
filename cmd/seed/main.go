package main

import (
	"flag"
	"log"

	"github.com/RealCheck/RealCheck-backend/internal/config"
	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/services"
)

// 独立的种子数据工具：建表并导入默认用户和示例新闻
func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.Migrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedService := services.NewSeedService()
	if err := seedService.SeedAllData(); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Println("seed completed")
}
