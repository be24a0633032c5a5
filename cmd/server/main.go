package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/antnlgr/cinelike/internal/config"
	"github.com/antnlgr/cinelike/internal/database"
	"github.com/antnlgr/cinelike/internal/handler"
	"github.com/antnlgr/cinelike/internal/middleware"
	"github.com/antnlgr/cinelike/internal/queue"
	"github.com/antnlgr/cinelike/internal/repository"
	"github.com/antnlgr/cinelike/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN, cfg.DBSkipVerify)
	if err != nil {
		log.Fatalf("database: open failed: %v", err)
	}
	defer db.Close()

	// Schema first, seed second, both before accepting any traffic.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: migrate failed: %v", err)
	}
	movieRepo := repository.NewMovieRepo(db)
	if err := database.SeedMovies(ctx, movieRepo); err != nil {
		cancel()
		log.Fatalf("database: seed failed: %v", err)
	}
	cancel()

	userRepo := repository.NewUserRepo(db)
	likeRepo := repository.NewLikeRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	movieHandler := handler.NewMovieHandler(movieRepo)
	likeHandler := handler.NewLikeHandler(cfg, likeRepo)

	// Response cache for the catalog; disabled transparently without Redis.
	cacheCfg := config.LoadCacheConfig()
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(cacheCfg, rdb)

	// Background consumer turning like/unlike events into logs/activity.log.
	if cfg.QueueEnabled {
		go func() {
			if err := queue.StartLikeConsumer(); err != nil {
				log.Printf("activity-consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, authHandler, movieHandler, likeHandler, cfg.StaticDir, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Drain in-flight requests on SIGINT/SIGTERM, then release the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
