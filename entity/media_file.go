package entity

import (
	"time"

	"github.com/google/uuid"
)

type MediaFile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Filename     string    `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string    `json:"original_name" gorm:"type:varchar(255)"`
	FileType     string    `json:"file_type" gorm:"type:varchar(100)"`
	FileSize     int64     `json:"file_size" gorm:"not null"`
	FilePath     string    `json:"file_path" gorm:"type:varchar(1024)"`
	FileURL      string    `json:"file_url" gorm:"type:varchar(1024)"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

func (MediaFile) TableName() string {
	return "media_files"
}
