package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newschat/cache"
	"newschat/models"
	"newschat/observability"
	"newschat/validation"
)

// @title           News Sentiment Chat API
// @version         1.0
// @description     Ask questions about the news sentiment table in plain language. Prompts are routed to DAX generation, SQL generation and execution, or general conversation.

// @contact.name   API Support

// @host      localhost:8000
// @BasePath  /

// @schemes   http https

// Chatter answers a single prompt.
type Chatter interface {
	Chat(ctx context.Context, prompt string) (models.ChatResponse, error)
}

// HistoryStore persists /chat exchanges.
type HistoryStore interface {
	StoreChatHistory(record models.ChatHistory) (models.ChatHistory, error)
	ListChatHistory(userID string, limit int) ([]models.ChatHistory, error)
}

// Pinger reports whether the warehouse is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelInfo describes the configured language model.
type ModelInfo struct {
	Provider string
	Model    string
}

type Handlers struct {
	chat    Chatter
	history HistoryStore
	sql     Pinger
	model   ModelInfo
	cache   *cache.Cache
	logger  *zap.Logger
}

// New wires the HTTP handlers. history and sql may be nil when the
// corresponding backend is disabled or unconfigured.
func New(chat Chatter, history HistoryStore, sql Pinger, model ModelInfo, probeCache *cache.Cache, logger *zap.Logger) *Handlers {
	return &Handlers{
		chat:    chat,
		history: history,
		sql:     sql,
		model:   model,
		cache:   probeCache,
		logger:  logger.Named("handlers"),
	}
}

const defaultUserID = "default"

func userIDFrom(c *gin.Context) string {
	userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if userID == "" {
		return defaultUserID
	}
	return userID
}

// ChatHandler answers a natural-language prompt
// @Summary      Ask a question
// @Description  Classifies the prompt and returns generated DAX, a SQL result set, an execution error, or a conversational reply
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request    body      models.ChatRequest    true   "Prompt"
// @Param        X-User-ID  header    string                false  "User id the exchange is recorded under"
// @Success      200        {object}  models.ChatResponse   "type is one of dax, sql_result, error, text"
// @Failure      400        {object}  models.ErrorResponse  "Invalid request"
// @Failure      500        {object}  models.ErrorResponse  "Model or routing failure"
// @Router       /chat [post]
func (h *Handlers) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request: " + err.Error()})
		return
	}
	if err := validation.ValidatePrompt(req.Prompt); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}

	requestID := observability.RequestIDFrom(c)
	resp, err := h.chat.Chat(c.Request.Context(), req.Prompt)
	if err != nil {
		h.logger.Error("chat failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}

	h.recordHistory(c, requestID, req.Prompt, resp)
	c.JSON(http.StatusOK, resp)
}

// recordHistory stores the exchange. A storage failure is logged only.
func (h *Handlers) recordHistory(c *gin.Context, requestID, prompt string, resp models.ChatResponse) {
	if h.history == nil {
		return
	}

	record := models.ChatHistory{
		ID:       requestID,
		UserID:   userIDFrom(c),
		Prompt:   strings.TrimSpace(prompt),
		Route:    string(resp.Route),
		Type:     resp.Type,
		SQL:      resp.SQL,
		Response: resp.Response,
		RowCount: len(resp.Data),
	}
	if resp.Type == models.TypeError {
		record.Response = resp.Message
	}

	if _, err := h.history.StoreChatHistory(record); err != nil {
		h.logger.Warn("failed to store chat history",
			zap.String("request_id", requestID),
			zap.Error(err))
	}
}
