package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"newschat/models"
	"newschat/observability"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(h *Handlers, allowOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("request_id", observability.RequestIDFrom(c)),
			zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: fmt.Sprint(recovered)})
	}))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{observability.RequestIDHeader},
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsConfig))

	r.Use(observability.RequestID(), observability.Logger(logger), observability.Metrics())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", h.HealthHandler)
	r.POST("/chat", h.ChatHandler)
	r.GET("/history", h.HistoryHandler)

	return r
}
