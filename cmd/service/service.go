// @title        User API
// @version      1.0
// @description  使用者 CRUD 的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"user-api/internal/cache"
	"user-api/internal/config"
	"user-api/internal/database"
	"user-api/internal/handler"
	"user-api/internal/logger"
	"user-api/internal/middleware"
	"user-api/internal/router"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "user-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zl, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	if cfg.ResetDBOnStart {
		zl.Warn("rolling back all migrations", zap.Bool("reset_on_start", true))
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	// 未設定 REDIS_ADDR 時 cch 維持 nil interface，健康檢查會略過 Redis
	var cch cache.Cache
	if cfg.Redis.Enabled() {
		rc, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rc.Close()
		cch = rc
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Debug = cfg.Debug
	e.HTTPErrorHandler = middleware.ErrorHandler(zl)
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zl))
	e.Use(echomw.Recover())

	router.Setup(e, db, cch)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	zl.Info("server starting",
		zap.String("addr", cfg.ServerAddr),
		zap.Bool("redis", cch != nil),
	)
	return startServer(e, cfg.ServerAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
