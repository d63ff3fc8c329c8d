package cmd

import (
	"context"
	"errors"
	"fmt"
	"grocery/internal/config"
	"grocery/internal/core"
	"grocery/internal/db"
	"grocery/internal/http/handler"
	"grocery/internal/http/handler/middleware"
	"grocery/internal/http/payload"
	"grocery/internal/http/server"
	"grocery/internal/http/view"
	"grocery/internal/repository"
	"grocery/internal/session"
	"grocery/pkg/jwt"
	"grocery/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		fmt.Printf("failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("grocery", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	ctx := context.Background()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewGroceryRepository(dbConn)

	if err = repo.MigrateAndSeed(ctx); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// grocer
	grocer := core.NewGrocer(logger, repo)

	created, err := grocer.EnsureAdmin(ctx, config.Admin.Username, config.Admin.Password)
	if err != nil {
		logger.Errorw("failed to ensure admin account", "error", err)
		return err
	}
	if created {
		logger.Infow("admin account created", "username", config.Admin.Username)
	}
	if config.Admin.UsesDefaults() {
		logger.Warnw("admin account uses the default credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	// sessions
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer rdb.Close()

	if err = rdb.Ping(ctx).Err(); err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}

	jwtService := jwt.NewJWTService([]byte(config.Session.Secret))
	sessions := session.NewManager(
		logger,
		session.NewRedisStore(rdb),
		jwtService,
		config.Session.TTL,
		config.Session.CookieSecure)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	groceryHdlr := handler.NewGroceryHandler(
		logger,
		payload.DecodeValidator{},
		grocer,
		sessions,
		renderer)

	guard := middleware.NewGuardMiddleware(logger, sessions, grocer)

	// register routes
	mux := http.NewServeMux()
	handler.Mount(mux, groceryHdlr.Routes(), guard)

	// middleware
	hdlr := middleware.NewSessionMiddleware(logger, sessions).Sessions(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if sdErr := server.Shutdown(); sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
