package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/advikbond/real-estate/http/controller"
	middlewares "github.com/advikbond/real-estate/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/", ctrl.ServiceInfo)

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/health", ctrl.HealthCheck)

		projectRoutes := apiRoutes.Group("/projects")
		{
			projectRoutes.GET("", ctrl.ListProjects)
			projectRoutes.POST("", ctrl.CreateProject)
			projectRoutes.GET("/:projectId", ctrl.GetProject)

			projectRoutes.POST("/:projectId/partners", ctrl.AttachPartners)
			projectRoutes.POST("/:projectId/brokerages", ctrl.AttachBrokerages)
			projectRoutes.POST("/:projectId/agents", ctrl.AttachAgents)
			projectRoutes.POST("/:projectId/media", ctrl.UploadMedia)
		}
	}

	return r
}
