package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachPartnersRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "Round Trip")

	rr := env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/partners", gin.H{
		"projectName": "Round Trip",
		"partners": []gin.H{
			{"name": "A", "type": "investor", "contact_number": "+1-555-0100", "email": "a@example.com"},
			{"name": "B", "type": "investor"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var attachResp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    []struct {
			ID        string `json:"id"`
			ProjectID string `json:"project_id"`
			Name      string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &attachResp))
	assert.True(t, attachResp.Success)
	assert.Equal(t, "Partners added successfully", attachResp.Message)
	require.Len(t, attachResp.Data, 2)
	assert.Equal(t, projectID, attachResp.Data[0].ProjectID)
	assert.NotEqual(t, attachResp.Data[0].ID, attachResp.Data[1].ID)

	rr = env.doJSON(t, http.MethodGet, "/api/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var aggResp struct {
		Partners []struct {
			Name          string  `json:"name"`
			Type          string  `json:"type"`
			ProjectName   *string `json:"project_name"`
			ContactNumber *string `json:"contact_number"`
			Email         *string `json:"email"`
		} `json:"partners"`
		Brokerages []json.RawMessage `json:"brokerages"`
		Agents     []json.RawMessage `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &aggResp))
	require.Len(t, aggResp.Partners, 2)
	assert.Empty(t, aggResp.Brokerages)
	assert.Empty(t, aggResp.Agents)

	byName := make(map[string]int)
	for i, p := range aggResp.Partners {
		byName[p.Name] = i
	}
	a := aggResp.Partners[byName["A"]]
	assert.Equal(t, "investor", a.Type)
	require.NotNil(t, a.ProjectName)
	assert.Equal(t, "Round Trip", *a.ProjectName)
	require.NotNil(t, a.ContactNumber)
	assert.Equal(t, "+1-555-0100", *a.ContactNumber)
	require.NotNil(t, a.Email)
	assert.Equal(t, "a@example.com", *a.Email)

	b := aggResp.Partners[byName["B"]]
	assert.Nil(t, b.ContactNumber)
	assert.Nil(t, b.Email)
}

func TestAttachPartnersEmptyList(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "Empty Attach")

	rr := env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/partners", gin.H{
		"partners": []gin.H{},
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "No partners provided", resp["error"])
}

func TestAttachPartnersMissingList(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "Missing Attach")

	rr := env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/partners", gin.H{
		"projectName": "Missing Attach",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAttachPartnersInvalidProjectID(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, http.MethodPost, "/api/projects/nope/partners", gin.H{
		"partners": []gin.H{{"name": "A", "type": "investor"}},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAttachBrokeragesAndAgents(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "Brokered")

	rr := env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/brokerages", gin.H{
		"brokerages": []gin.H{
			{"name": "Acme Realty", "email": "office@acme.test"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/agents", gin.H{
		"agents": []gin.H{
			{"name": "Jordan", "contact_number": "+1-555-0101"},
			{"name": "Casey"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = env.doJSON(t, http.MethodGet, "/api/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var aggResp struct {
		Brokerages []struct {
			Name  string  `json:"name"`
			Email *string `json:"email"`
		} `json:"brokerages"`
		Agents []struct {
			Name string `json:"name"`
		} `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &aggResp))
	require.Len(t, aggResp.Brokerages, 1)
	assert.Equal(t, "Acme Realty", aggResp.Brokerages[0].Name)
	require.NotNil(t, aggResp.Brokerages[0].Email)
	assert.Len(t, aggResp.Agents, 2)
}

func TestAttachBrokeragesEmptyList(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "No Brokerages")

	rr := env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/brokerages", gin.H{"brokerages": []gin.H{}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/agents", gin.H{"agents": []gin.H{}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
