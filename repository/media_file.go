package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

type MediaFileRepository struct {
	db *gorm.DB
}

func NewMediaFileRepository(db *gorm.DB) *MediaFileRepository {
	return &MediaFileRepository{db: db}
}

func (r *MediaFileRepository) Create(mediaFile *entity.MediaFile) error {
	return r.db.Create(mediaFile).Error
}

func (r *MediaFileRepository) FindByProjectID(projectID uuid.UUID) ([]entity.MediaFile, error) {
	mediaFiles := make([]entity.MediaFile, 0)
	err := r.db.Where("project_id = ?", projectID).Find(&mediaFiles).Error
	if err != nil {
		return nil, err
	}
	return mediaFiles, nil
}
