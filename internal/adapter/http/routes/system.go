package routes

import (
	"aurora_motors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRoot = "/"
	PathTest = "/test"
	PathSeed = "/seed"
)

func addSystemRoutes(router *gin.Engine, systemHandler *handlers.SystemHandler) {
	router.GET(PathRoot, systemHandler.Root)
	router.GET(PathTest, systemHandler.Diagnostics)
	router.POST(PathSeed, systemHandler.Seed)
}
