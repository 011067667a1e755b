package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advikbond/real-estate/entity"
)

func strPtr(s string) *string { return &s }

func TestPartnerCreateBatchAndFindByProjectID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPartnerRepository(db)

	projectID := uuid.New()
	otherProjectID := uuid.New()
	now := time.Now().UTC()

	partners := []entity.Partner{
		{
			ID:            uuid.New(),
			ProjectID:     projectID,
			ProjectName:   strPtr("Sunset Villas"),
			Name:          "A",
			Type:          "investor",
			ContactNumber: strPtr("+1-555-0100"),
			Email:         strPtr("a@example.com"),
			CreatedAt:     now,
		},
		{
			ID:        uuid.New(),
			ProjectID: projectID,
			Name:      "B",
			Type:      "investor",
			CreatedAt: now,
		},
	}
	require.NoError(t, repo.CreateBatch(partners))

	other := []entity.Partner{
		{ID: uuid.New(), ProjectID: otherProjectID, Name: "C", Type: "developer", CreatedAt: now},
	}
	require.NoError(t, repo.CreateBatch(other))

	found, err := repo.FindByProjectID(projectID)
	require.NoError(t, err)
	require.Len(t, found, 2)

	byName := make(map[string]entity.Partner)
	for _, p := range found {
		byName[p.Name] = p
	}

	a := byName["A"]
	assert.Equal(t, "investor", a.Type)
	require.NotNil(t, a.ProjectName)
	assert.Equal(t, "Sunset Villas", *a.ProjectName)
	require.NotNil(t, a.ContactNumber)
	assert.Equal(t, "+1-555-0100", *a.ContactNumber)
	require.NotNil(t, a.Email)
	assert.Equal(t, "a@example.com", *a.Email)

	b := byName["B"]
	assert.Nil(t, b.ProjectName)
	assert.Nil(t, b.ContactNumber)
	assert.Nil(t, b.Email)
}

func TestPartnerFindByProjectIDEmpty(t *testing.T) {
	repo := NewPartnerRepository(newTestDB(t))

	found, err := repo.FindByProjectID(uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestBrokerageAndAgentBatches(t *testing.T) {
	db := newTestDB(t)
	brokerageRepo := NewBrokerageRepository(db)
	agentRepo := NewAgentRepository(db)

	projectID := uuid.New()
	now := time.Now().UTC()

	require.NoError(t, brokerageRepo.CreateBatch([]entity.Brokerage{
		{ID: uuid.New(), ProjectID: projectID, Name: "Acme Realty", Email: strPtr("office@acme.test"), CreatedAt: now},
	}))
	require.NoError(t, agentRepo.CreateBatch([]entity.Agent{
		{ID: uuid.New(), ProjectID: projectID, Name: "Jordan", ContactNumber: strPtr("+1-555-0101"), CreatedAt: now},
		{ID: uuid.New(), ProjectID: projectID, Name: "Casey", CreatedAt: now},
	}))

	brokerages, err := brokerageRepo.FindByProjectID(projectID)
	require.NoError(t, err)
	require.Len(t, brokerages, 1)
	assert.Equal(t, "Acme Realty", brokerages[0].Name)

	agents, err := agentRepo.FindByProjectID(projectID)
	require.NoError(t, err)
	assert.Len(t, agents, 2)
}
