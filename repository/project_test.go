package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
)

func TestProjectCreateAndFindByID(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	now := time.Now().UTC()
	project := &entity.Project{
		ID:        uuid.New(),
		Name:      "Sunset Villas",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(project))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)
	assert.Equal(t, "Sunset Villas", found.Name)
}

func TestProjectFindByIDNotFound(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	_, err := repo.FindByID(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProjectFindAllNewestFirst(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	base := time.Now().UTC()
	first := &entity.Project{ID: uuid.New(), Name: "First", CreatedAt: base, UpdatedAt: base}
	second := &entity.Project{ID: uuid.New(), Name: "Second", CreatedAt: base.Add(time.Second), UpdatedAt: base.Add(time.Second)}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Second", projects[0].Name)
	assert.Equal(t, "First", projects[1].Name)
}

func TestProjectFindAllEmpty(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectIDsAreUnique(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	seen := make(map[uuid.UUID]bool)
	now := time.Now().UTC()
	for i := 0; i < 20; i++ {
		project := &entity.Project{ID: uuid.New(), Name: "P", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(project))
		assert.False(t, seen[project.ID])
		seen[project.ID] = true
	}
}
