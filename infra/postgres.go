package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/config"
	"github.com/advikbond/real-estate/entity"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}

	err = db.AutoMigrate(
		&entity.Project{},
		&entity.Partner{},
		&entity.Brokerage{},
		&entity.Agent{},
		&entity.MediaFile{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database schema: %v", err))
	}

	return &PostgresClient{DB: db}
}
