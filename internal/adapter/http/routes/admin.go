package routes

import (
	"construction_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin = "/admin"
)

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminConfigHandler, leadHandler *handlers.LeadHandler) {
	configs := rg.Group("/configs")
	{
		configs.GET("", adminHandler.ListConfigs)
		configs.POST("", adminHandler.CreateConfig)
		configs.PUT("/:id", adminHandler.UpdateConfig)
		configs.PATCH("/:id/publish", adminHandler.PublishConfig)
		configs.DELETE("/:id", adminHandler.DeleteConfig)
		configs.GET("/:id/options", adminHandler.ListOptions)
		configs.POST("/:id/options", adminHandler.CreateOption)
	}

	options := rg.Group("/options")
	{
		options.PUT("/:id", adminHandler.UpdateOption)
		options.DELETE("/:id", adminHandler.DeleteOption)
	}

	regions := rg.Group("/regions")
	{
		regions.GET("", adminHandler.ListRegions)
		regions.POST("", adminHandler.CreateRegion)
		regions.PUT("/:id", adminHandler.UpdateRegion)
		regions.DELETE("/:id", adminHandler.DeleteRegion)
	}

	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.ListLeads)
		leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}
}
