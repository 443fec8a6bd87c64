package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newschat/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// HistoryHandler lists recent exchanges for the caller
// @Summary      Chat history
// @Description  Returns the caller's most recent /chat exchanges, newest first
// @Tags         Chat
// @Produce      json
// @Param        X-User-ID  header    string                  false  "User id, defaults to \"default\""
// @Param        limit      query     int                     false  "Maximum items (default 20, max 200)"
// @Success      200        {object}  models.HistoryResponse
// @Failure      400        {object}  models.ErrorResponse    "Invalid limit"
// @Failure      500        {object}  models.ErrorResponse    "Storage failure"
// @Failure      503        {object}  models.ErrorResponse    "History disabled"
// @Router       /history [get]
func (h *Handlers) HistoryHandler(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Detail: "chat history is disabled"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	items, err := h.history.ListChatHistory(userIDFrom(c), limit)
	if err != nil {
		h.logger.Error("failed to list chat history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{Items: items})
}
