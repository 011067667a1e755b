package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// CreateBatch inserts all rows in one statement. Not atomic with any other
// write; the caller gets whatever the store committed.
func (r *PartnerRepository) CreateBatch(partners []entity.Partner) error {
	return r.db.Create(&partners).Error
}

func (r *PartnerRepository) FindByProjectID(projectID uuid.UUID) ([]entity.Partner, error) {
	partners := make([]entity.Partner, 0)
	err := r.db.Where("project_id = ?", projectID).Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}
