package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/advikbond/real-estate/config"
	"github.com/advikbond/real-estate/http/controller"
	routes "github.com/advikbond/real-estate/http/route"
	infraPkg "github.com/advikbond/real-estate/infra"
	"github.com/advikbond/real-estate/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()

	if err := os.MkdirAll(cfg.EnvConfig.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload staging directory: %v", err)
	}

	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)

	log.Printf("Server running on port %s", cfg.EnvConfig.Server.Port)
	log.Printf("Environment: %s", cfg.EnvConfig.Environment.Mode)
	log.Printf("Storage endpoint: %s", cfg.EnvConfig.Minio.Endpoint)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
