package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "aurora_motors/docs"
	"aurora_motors/internal/adapter/http/handlers"
	"aurora_motors/internal/adapter/http/routes"
	"aurora_motors/internal/adapter/persistence/repository"
	"aurora_motors/internal/config"
	"aurora_motors/internal/infrastructure/database"
	"aurora_motors/internal/infrastructure/telemetry"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Aurora Motors API
// @version         1.0
// @description     Catalog, promotions, dealers, lead capture and configurator pricing for the Aurora Motors website.

// @contact.name   API Support

// @host localhost:8000

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	carModelRepo := repository.NewCarModelRepository(store)
	promotionRepo := repository.NewPromotionRepository(store)
	dealerRepo := repository.NewDealerRepository(store)
	leadRepo := repository.NewLeadRepository(store)

	catalogUseCase := usecase.NewCatalogUseCase(carModelRepo, promotionRepo, dealerRepo)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	pricingUseCase := usecase.NewPricingUseCase(carModelRepo)
	seedUseCase := usecase.NewSeedUseCase(carModelRepo, promotionRepo)
	diagnosticsUseCase := usecase.NewDiagnosticsUseCase(store)

	router := routes.NewRouter(routes.Handlers{
		Catalog: handlers.NewCatalogHandler(catalogUseCase),
		Leads:   handlers.NewLeadHandler(leadUseCase),
		Pricing: handlers.NewPricingHandler(pricingUseCase),
		System:  handlers.NewSystemHandler(diagnosticsUseCase, seedUseCase),
	}, routes.Options{AllowedOrigins: cfg.CORSAllowedOrigins})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           tracedHandler(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[server] listening addr=%s storage=%s", srv.Addr, store.Info().Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[server] shutting down timeout=%s", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] forced shutdown err=%v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("[storage] close failed err=%v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("[telemetry] shutdown failed err=%v", err)
	}
	log.Printf("[server] stopped")
}

func tracedHandler(cfg *config.Config, router *gin.Engine) http.Handler {
	if cfg.TracesExporter == config.TracesExporterNone {
		return router
	}
	return telemetry.Middleware(cfg.ServiceName, routes.PathRoot, routes.PathTest)(router)
}
