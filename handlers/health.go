package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sqlServerProbeKey  = "sqlserver"
	sqlServerProbeWait = 5 * time.Second
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Reports SQL Server reachability (cached briefly), the configured model and the history store
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":     "healthy",
		"sql_server": h.sqlServerStatus(c.Request.Context()),
		"llm": gin.H{
			"provider": h.model.Provider,
			"model":    h.model.Model,
		},
		"history": "disabled",
	}
	if h.history != nil {
		status["history"] = "enabled"
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handlers) sqlServerStatus(ctx context.Context) string {
	if h.sql == nil {
		return "not_configured"
	}

	probe := func() interface{} {
		ctx, cancel := context.WithTimeout(ctx, sqlServerProbeWait)
		defer cancel()
		if err := h.sql.Ping(ctx); err != nil {
			h.logger.Warn("SQL Server ping failed", zap.Error(err))
			return "unreachable"
		}
		return "connected"
	}

	if h.cache == nil {
		return probe().(string)
	}
	return h.cache.Remember(sqlServerProbeKey, probe).(string)
}
