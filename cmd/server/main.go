package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/feewhiz/feewhiz/feedata"
	"github.com/feewhiz/feewhiz/internal/config"
	"github.com/feewhiz/feewhiz/internal/database"
	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/handler"
	"github.com/feewhiz/feewhiz/internal/middleware"
	"github.com/feewhiz/feewhiz/internal/ratetable"
	"github.com/feewhiz/feewhiz/internal/repository"
	"github.com/feewhiz/feewhiz/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		pool *pgxpool.Pool
		repo *repository.RateTableRepository
		src  ratetable.Source
	)

	switch cfg.RateSource {
	case config.RateSourcePostgres:
		var err error
		pool, err = database.NewPool(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
			if err := database.SeedRateTables(ctx, pool, feedata.Documents); err != nil {
				log.Fatal().Err(err).Msg("failed to seed rate tables")
			}
		}
		repo = repository.NewRateTableRepository(pool)
		src = ratetable.RepositorySource{Store: repo}
	case config.RateSourceDir:
		src = ratetable.FSSource{FS: os.DirFS(cfg.RateDir)}
	default:
		src = ratetable.FSSource{FS: feedata.Documents}
	}

	dispatcher, err := ratetable.Load(ctx, src, ratetable.Options{Strict: cfg.StrictRateTables})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load rate tables")
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(dispatcher, repo)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, dispatcher)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("rate_source", cfg.RateSource).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, dispatcher *fee.Dispatcher) {
	calculatorService := service.NewCalculatorService(dispatcher)
	comparisonService := service.NewComparisonService(dispatcher)
	reportService := service.NewReportService(comparisonService)

	feeHandler := handler.NewFeeHandler(calculatorService)
	comparisonHandler := handler.NewComparisonHandler(comparisonService)
	reportHandler := handler.NewReportHandler(reportService)

	api := router.Group("/api/v1")
	{
		api.GET("/platforms", feeHandler.ListPlatforms)
		api.GET("/platforms/:platform", feeHandler.GetPlatform)
		api.GET("/platforms/:platform/fee", feeHandler.PlatformFee)
		api.POST("/fees/calculate", feeHandler.Calculate)
		api.GET("/compare", comparisonHandler.Compare)
		api.GET("/quote", comparisonHandler.Quote)
		api.GET("/report", reportHandler.GetReport)
	}
}
