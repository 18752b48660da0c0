package routes

import (
	"construction_quote/internal/adapter/http/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathCalculator = "/calculator"
	PathLeads      = "/leads"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addCalculatorRoutes registers the public surface. Quotations and lead
// submissions go through the rate limiter.
func addCalculatorRoutes(rg *gin.RouterGroup, calculatorHandler *handlers.CalculatorHandler, leadHandler *handlers.LeadHandler, limit gin.HandlerFunc) {
	calculator := rg.Group(PathCalculator)
	{
		calculator.GET("/building-types", calculatorHandler.ListBuildingTypes)
		calculator.GET("/building-types/:slug", calculatorHandler.GetBuildingType)
		calculator.GET("/regions", calculatorHandler.ListRegions)
		calculator.POST("/quote", limit, calculatorHandler.Quote)
	}

	rg.POST(PathLeads, limit, leadHandler.SubmitLead)
}
