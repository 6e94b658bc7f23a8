// @title                       Fitness Tracker API
// @version                     1.0
// @description                 Exercise logs, catalogs, characters, rooms and a live leaderboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fitness_tracker/docs"
	"fitness_tracker/internal/config"
	"fitness_tracker/internal/handlers"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/repository"
	"fitness_tracker/internal/repository/db"
	"fitness_tracker/internal/server"
	"fitness_tracker/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	redisPingTimeout = 5 * time.Second
	shutdownTimeout  = 10 * time.Second
)

func main() {
	// load configs/config.yml (+ .env, FITNESS_* overrides)
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)

	// open DB
	sqlDB, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// connect to Redis (leaderboard)
	rdb, err := openRedis(cfg)
	if err != nil {
		log.Fatalw("failed to connect to redis", "addr", cfg.Redis.Addr, "err", err)
	}
	defer func() { _ = rdb.Close() }()

	// wire dependencies
	repos := repository.NewRepository(sqlDB, rdb, cfg.Ranking.Key)
	services := service.NewService(repos, cfg, log)
	apiHandler := handlers.NewHandler(services, log.Named("http"))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// close idle rooms in the background
	go services.RoomReaper.Run(ctx, cfg.Rooms.ReapInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite database and its schema.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	path := cfg.DB.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", "fitness.db")
		path = "fitness.db"
	}
	return db.InitDB(path)
}

func openRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
