package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/advikbond/real-estate/entity"
	"github.com/advikbond/real-estate/http/controller/dto"
	"github.com/advikbond/real-estate/utils"
)

// AttachPartners inserts the supplied partners as one batch under the
// project. The batch is a single insert but carries no transaction with
// anything else; a rejected batch leaves nothing committed, a rejected
// request after commit cannot be rolled back.
func (ctrl *Controller) AttachPartners(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Partner] Invalid projectId format: %v", err)
		utils.JSON400(c, "Invalid projectId format")
		return
	}

	var req dto.AttachPartnersRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Partner] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if len(req.Partners) == 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Partner] Empty partners list for project %s", projectID)
		utils.JSON400(c, "No partners provided")
		return
	}

	partners := make([]entity.Partner, 0, len(req.Partners))
	for _, p := range req.Partners {
		partners = append(partners, entity.Partner{
			ID:            uuid.New(),
			ProjectID:     projectID,
			ProjectName:   req.ProjectName,
			Name:          p.Name,
			Type:          p.Type,
			ContactNumber: p.ContactNumber,
			Email:         p.Email,
			CreatedAt:     time.Now().UTC(),
		})
	}

	if err := ctrl.Repository.PartnerRepo.CreateBatch(partners); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Partner] Failed to save partners: %v", err)
		utils.JSON500(c, "Failed to save partners")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Partner] Attached %d partners to project %s", len(partners), projectID)
	utils.JSON200(c, gin.H{
		"success": true,
		"data":    partners,
		"message": "Partners added successfully",
	})
}

func (ctrl *Controller) AttachBrokerages(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Brokerage] Invalid projectId format: %v", err)
		utils.JSON400(c, "Invalid projectId format")
		return
	}

	var req dto.AttachBrokeragesRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Brokerage] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if len(req.Brokerages) == 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Brokerage] Empty brokerages list for project %s", projectID)
		utils.JSON400(c, "No brokerages provided")
		return
	}

	brokerages := make([]entity.Brokerage, 0, len(req.Brokerages))
	for _, b := range req.Brokerages {
		brokerages = append(brokerages, entity.Brokerage{
			ID:            uuid.New(),
			ProjectID:     projectID,
			ProjectName:   req.ProjectName,
			Name:          b.Name,
			ContactNumber: b.ContactNumber,
			Email:         b.Email,
			CreatedAt:     time.Now().UTC(),
		})
	}

	if err := ctrl.Repository.BrokerageRepo.CreateBatch(brokerages); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Brokerage] Failed to save brokerages: %v", err)
		utils.JSON500(c, "Failed to save brokerages")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Brokerage] Attached %d brokerages to project %s", len(brokerages), projectID)
	utils.JSON200(c, gin.H{
		"success": true,
		"data":    brokerages,
		"message": "Brokerages added successfully",
	})
}

func (ctrl *Controller) AttachAgents(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Agent] Invalid projectId format: %v", err)
		utils.JSON400(c, "Invalid projectId format")
		return
	}

	var req dto.AttachAgentsRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Agent] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if len(req.Agents) == 0 {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Agent] Empty agents list for project %s", projectID)
		utils.JSON400(c, "No agents provided")
		return
	}

	agents := make([]entity.Agent, 0, len(req.Agents))
	for _, a := range req.Agents {
		agents = append(agents, entity.Agent{
			ID:            uuid.New(),
			ProjectID:     projectID,
			ProjectName:   req.ProjectName,
			Name:          a.Name,
			ContactNumber: a.ContactNumber,
			Email:         a.Email,
			CreatedAt:     time.Now().UTC(),
		})
	}

	if err := ctrl.Repository.AgentRepo.CreateBatch(agents); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Agent] Failed to save agents: %v", err)
		utils.JSON500(c, "Failed to save agents")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Agent] Attached %d agents to project %s", len(agents), projectID)
	utils.JSON200(c, gin.H{
		"success": true,
		"data":    agents,
		"message": "Agents added successfully",
	})
}
