package entity

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID     uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	ProjectName   *string   `json:"project_name" gorm:"type:varchar(255)"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	ContactNumber *string   `json:"contact_number" gorm:"type:varchar(50)"`
	Email         *string   `json:"email" gorm:"type:varchar(255)"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}

func (Agent) TableName() string {
	return "agents"
}
