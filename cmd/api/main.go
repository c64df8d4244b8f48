package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/arielstudio/nail-scheduler/internal/cache"
	"github.com/arielstudio/nail-scheduler/internal/config"
	dbpkg "github.com/arielstudio/nail-scheduler/internal/db"
	"github.com/arielstudio/nail-scheduler/internal/metrics"
	"github.com/arielstudio/nail-scheduler/internal/middleware"
	"github.com/arielstudio/nail-scheduler/internal/routes"
	"github.com/arielstudio/nail-scheduler/internal/state"
	"github.com/arielstudio/nail-scheduler/internal/store"
)

func main() {

	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	localCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid REDIS_URL")
	}

	m := metrics.NewMetrics("nail_scheduler")

	controller := state.NewController(
		localCache,
		store.NewGormStore(db),
		m,
		logger,
		cfg.RemoteTimeout,
	)
	defer controller.Close()

	// Cache primeiro, remoto em seguida; falha remota não impede o boot.
	controller.Load(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "phase": controller.Phase()})
	})

	routes.RegisterRoutes(r, db, cfg, controller, m)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
