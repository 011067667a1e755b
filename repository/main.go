package repository

import (
	"github.com/advikbond/real-estate/infra"
)

type Repository struct {
	ProjectRepo   *ProjectRepository
	PartnerRepo   *PartnerRepository
	BrokerageRepo *BrokerageRepository
	AgentRepo     *AgentRepository
	MediaFileRepo *MediaFileRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		ProjectRepo:   NewProjectRepository(infra.Postgres.DB),
		PartnerRepo:   NewPartnerRepository(infra.Postgres.DB),
		BrokerageRepo: NewBrokerageRepository(infra.Postgres.DB),
		AgentRepo:     NewAgentRepository(infra.Postgres.DB),
		MediaFileRepo: NewMediaFileRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
