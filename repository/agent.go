package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

type AgentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) CreateBatch(agents []entity.Agent) error {
	return r.db.Create(&agents).Error
}

func (r *AgentRepository) FindByProjectID(projectID uuid.UUID) ([]entity.Agent, error) {
	agents := make([]entity.Agent, 0)
	err := r.db.Where("project_id = ?", projectID).Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}
