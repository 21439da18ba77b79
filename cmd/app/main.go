package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Bishopxxx/Bishop-blog/internal/adapters/database"
	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi"
	redisadapter "github.com/Bishopxxx/Bishop-blog/internal/adapters/redis"
	"github.com/Bishopxxx/Bishop-blog/internal/config"
	"github.com/Bishopxxx/Bishop-blog/internal/core/post"
	postapp "github.com/Bishopxxx/Bishop-blog/internal/core/post/service"
	sessionapp "github.com/Bishopxxx/Bishop-blog/internal/core/session/service"
	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
	userapp "github.com/Bishopxxx/Bishop-blog/internal/core/user/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// run owns the whole process lifecycle. Errors propagate back here so the
// deferred resource cleanup always executes, including on SIGINT/SIGTERM.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Error("closing database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(&user.User{}, &post.Post{}); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("database ready", zap.String("driver", cfg.DBDriver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("closing redis", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	sessionStore := redisadapter.NewSessionStoreRedis(redisClient)

	userSvc := userapp.NewUserService(userRepo, logger)
	postSvc := postapp.NewPostService(postRepo)
	sessions := sessionapp.NewManager(sessionStore, userSvc, cfg.SessionTTL)

	r := httpapi.SetupRoutes(cfg, logger, userSvc, postSvc, sessions)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.ListenAddr, err)
	}

	logger.Info("listening", zap.String("addr", ln.Addr().String()))
	return httpapi.Serve(ctx, logger, ln, r)
}
