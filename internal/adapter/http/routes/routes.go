package routes

import (
	"log"
	"net/http"
	"time"

	_ "aurora_motors/docs" // registers swagger docs
	"aurora_motors/internal/adapter/http/handlers"
	"aurora_motors/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Leads   *handlers.LeadHandler
	Pricing *handlers.PricingHandler
	System  *handlers.SystemHandler
}

// Options configures router middleware.
type Options struct {
	// AllowedOrigins lists CORS origins; empty or ["*"] allows any origin.
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware, swagger and API routes.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addSystemRoutes(router, h.System)
	addCatalogRoutes(router, h.Catalog)
	addLeadRoutes(router, h.Leads, h.Pricing)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
