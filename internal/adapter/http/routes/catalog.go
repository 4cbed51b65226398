package routes

import (
	"aurora_motors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathModels     = "/models"
	PathPromotions = "/promotions"
	PathDealers    = "/dealers"
)

func addCatalogRoutes(router *gin.Engine, catalogHandler *handlers.CatalogHandler) {
	models := router.Group(PathModels)
	{
		models.GET("", catalogHandler.ListModels)
		models.GET("/:slug", catalogHandler.GetModel)
	}

	router.GET(PathPromotions, catalogHandler.ListPromotions)
	router.GET(PathDealers, catalogHandler.ListDealers)
}
