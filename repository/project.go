package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project *entity.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) FindByID(id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns every project, newest first.
func (r *ProjectRepository) FindAll() ([]entity.Project, error) {
	projects := make([]entity.Project, 0)
	err := r.db.Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
