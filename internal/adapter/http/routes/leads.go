package routes

import (
	"aurora_motors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads       = "/leads"
	PathConfigPrice = "/config/price"
)

func addLeadRoutes(router *gin.Engine, leadHandler *handlers.LeadHandler, pricingHandler *handlers.PricingHandler) {
	router.POST(PathLeads, leadHandler.CreateLead)
	router.POST(PathConfigPrice, pricingHandler.CalculatePrice)
}
