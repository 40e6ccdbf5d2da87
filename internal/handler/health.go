package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings Postgres (catálogo, órdenes) and Redis (sesiones). Degrades to
// 503 when either backend is unreachable; the body names the failing side
// without leaking connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estadoDB := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			estadoDB = "down"
		}

		estadoSesiones := "ok"
		if rdb.Ping(ctx).Err() != nil {
			estadoSesiones = "down"
		}

		status, resumen := http.StatusOK, "ok"
		if estadoDB != "ok" || estadoSesiones != "ok" {
			status, resumen = http.StatusServiceUnavailable, "degraded"
		}

		c.JSON(status, gin.H{
			"status":   resumen,
			"database": estadoDB,
			"sessions": estadoSesiones,
		})
	}
}
