package main

import (
	"linkup/backend/internal/config"
	"linkup/backend/internal/database"
	"linkup/backend/internal/handler"
	"linkup/backend/pkg/logger"

	// Swagger imports
	_ "linkup/backend/docs" // This is important for swag to find the generated docs
)

// @title           Linkup API
// @version         1.0
// @description     This is the API for the Linkup connections service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", err)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.AppEnv)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to migrate database", err)
	}
	logger.Info("database ready")

	gw := database.NewGateway(db, cfg.QueryRetries)
	router := handler.NewRouter(gw, cfg.JWTSecret)

	logger.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", err)
	}
}
