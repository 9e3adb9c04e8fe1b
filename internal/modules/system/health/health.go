package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	pkgcron "github.com/rohitgunthal18/pixico-core/internal/pkg/cron"
	redispkg "github.com/rohitgunthal18/pixico-core/internal/pkg/redis"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

type Handler struct {
	gw      *gateway.Gateway
	redis   *redispkg.Client
	sched   *pkgcron.Scheduler
	started time.Time
}

func NewHandler(gw *gateway.Gateway, redis *redispkg.Client, sched *pkgcron.Scheduler) *Handler {
	return &Handler{gw: gw, redis: redis, sched: sched, started: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.GET("/health", h.health)
	rg.GET("/health/cron", adminMW, h.cron)
}

func (h *Handler) cron(c *gin.Context) {
	response.OK(c, h.sched.List())
}

func (h *Handler) health(c *gin.Context) {
	dbState := "ok"
	if h.gw.Inert() {
		dbState = "unconfigured"
	}

	redisState := "ok"
	if h.redis == nil {
		redisState = "unconfigured"
	} else if err := h.redis.Raw().Ping(c.Request.Context()).Err(); err != nil {
		redisState = "down"
	}

	response.OK(c, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
		"deps": gin.H{
			"database": dbState,
			"redis":    redisState,
		},
	})
}
