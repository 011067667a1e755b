package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

type BrokerageRepository struct {
	db *gorm.DB
}

func NewBrokerageRepository(db *gorm.DB) *BrokerageRepository {
	return &BrokerageRepository{db: db}
}

func (r *BrokerageRepository) CreateBatch(brokerages []entity.Brokerage) error {
	return r.db.Create(&brokerages).Error
}

func (r *BrokerageRepository) FindByProjectID(projectID uuid.UUID) ([]entity.Brokerage, error) {
	brokerages := make([]entity.Brokerage, 0)
	err := r.db.Where("project_id = ?", projectID).Find(&brokerages).Error
	if err != nil {
		return nil, err
	}
	return brokerages, nil
}
