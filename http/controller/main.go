package controller

import (
	"context"
	"io"

	"github.com/advikbond/real-estate/config"
	"github.com/advikbond/real-estate/infra"
	"github.com/advikbond/real-estate/repository"
)

// MediaStorage is the blob-store seam used by the media upload flow.
// Production wires the MinIO client; tests substitute a recording fake.
type MediaStorage interface {
	UploadObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Storage    MediaStorage
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Storage:    infra.Minio,
	}
}
