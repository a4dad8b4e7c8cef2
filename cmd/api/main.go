package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"postcode-api/internal/config"
	"postcode-api/internal/handler"
	"postcode-api/internal/middleware"
	"postcode-api/internal/repository"
	"postcode-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "postcode-api/docs"
)

// @title        Postcode API
// @version      1.0
// @description  UK postcode validation, decomposition and location lookup.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	provider, cleanup, err := newLocationProvider(config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize lookup backend")
	}
	defer cleanup()

	// Initialize layers
	postcodeService := service.NewPostcodeService(config.SpecialCaseList()...)
	locationService := service.NewLocationService(provider)

	validateHandler := handler.NewValidateHandler(postcodeService)
	analyseHandler := handler.NewAnalyseHandler(postcodeService)
	locationHandler := handler.NewLocationHandler(locationService)

	metrics := middleware.NewMetrics("postcode_api")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/validate", validateHandler.Validate)
	r.GET("/analyse", analyseHandler.Analyse)
	r.GET("/coordinates", locationHandler.Coordinates)
	r.GET("/distance", locationHandler.Distance)
	r.GET("/bearing", locationHandler.Bearing)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().
		Str("address", config.ServerAddress).
		Str("backend", config.LookupBackend).
		Msg("starting server")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// newLocationProvider builds the lookup backend named by the config, along
// with a cleanup function to release its resources.
func newLocationProvider(cfg config.Config) (service.LocationProvider, func(), error) {
	switch cfg.LookupBackend {
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot connect to db: %w", err)
		}
		return repository.NewPostgres(pool, cfg.LookupTable), pool.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("cannot connect to redis: %w", err)
		}
		return repository.NewRedis(client), func() { client.Close() }, nil

	case "csv":
		f, err := os.Open(cfg.CSVPath)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open lookup CSV: %w", err)
		}
		defer f.Close()

		provider, err := repository.NewMemoryFromCSV(f)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("keys", provider.Len()).Str("path", cfg.CSVPath).Msg("loaded lookup table")
		return provider, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown lookup backend %q", cfg.LookupBackend)
	}
}
