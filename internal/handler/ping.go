// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"user-api/internal/api"
	"user-api/internal/cache"
	"user-api/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	healthKey = "health:ping"
	healthTTL = 10 * time.Second
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis (若有設定) 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.MessageResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "database unhealthy"})
		}
		if cch != nil {
			// 寫入後讀回，確認 Redis 可讀寫
			stamp := time.Now().UTC().Format(time.RFC3339Nano)
			if err := cch.Set(ctx, healthKey, stamp, healthTTL).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "cache unhealthy"})
			}
			if got, err := cch.Get(ctx, healthKey).Result(); err != nil || got != stamp {
				return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
