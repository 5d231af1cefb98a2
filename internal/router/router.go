// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"user-api/internal/cache"
	"user-api/internal/database"
	"user-api/internal/handler"
	"user-api/internal/handler/users"
	"user-api/internal/store"
)

// Setup 註冊所有路由；cch 為 nil 時健康檢查略過 Redis
func Setup(e *echo.Echo, db database.DB, cch cache.Cache) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// Users CRUD
	users.Register(api, store.NewUserStore(db))
}
