package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advikbond/real-estate/entity"
	"github.com/advikbond/real-estate/http/controller/dto"
	"github.com/advikbond/real-estate/utils"
)

func (ctrl *Controller) CreateProject(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProjectRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	now := time.Now().UTC()
	project := &entity.Project{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctrl.Repository.ProjectRepo.Create(project); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to create project: %v", err)
		utils.JSON500(c, "Failed to create project")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Project] Created project '%s' with id %s", project.Name, project.ID)
	utils.JSON200(c, gin.H{
		"success":   true,
		"projectId": project.ID,
		"data":      project,
		"message":   "Project created successfully",
	})
}

// GetProject returns the project row together with all four child
// collections. The child reads are independent; no snapshot is taken across
// them, so a concurrent write may surface in some collections and not others.
func (ctrl *Controller) GetProject(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Invalid projectId format: %v", err)
		utils.JSON400(c, "Invalid projectId format")
		return
	}

	project, err := ctrl.Repository.ProjectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Project] Project %s not found", projectID)
			utils.JSON404(c, "Project not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to fetch project: %v", err)
		utils.JSON500(c, "Failed to fetch project")
		return
	}

	partners, err := ctrl.Repository.PartnerRepo.FindByProjectID(projectID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to fetch partners: %v", err)
		utils.JSON500(c, "Failed to fetch partners")
		return
	}

	brokerages, err := ctrl.Repository.BrokerageRepo.FindByProjectID(projectID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to fetch brokerages: %v", err)
		utils.JSON500(c, "Failed to fetch brokerages")
		return
	}

	agents, err := ctrl.Repository.AgentRepo.FindByProjectID(projectID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to fetch agents: %v", err)
		utils.JSON500(c, "Failed to fetch agents")
		return
	}

	mediaFiles, err := ctrl.Repository.MediaFileRepo.FindByProjectID(projectID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to fetch media files: %v", err)
		utils.JSON500(c, "Failed to fetch media files")
		return
	}

	utils.JSON200(c, gin.H{
		"project":    project,
		"partners":   partners,
		"brokerages": brokerages,
		"agents":     agents,
		"mediaFiles": mediaFiles,
	})
}

func (ctrl *Controller) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := ctrl.Repository.ProjectRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to list projects: %v", err)
		utils.JSON500(c, "Failed to fetch projects")
		return
	}

	utils.JSON200(c, projects)
}
