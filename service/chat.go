package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"newschat/ai"
	"newschat/models"
	"newschat/observability"
)

// DataQueryHandler answers prompts on the data route.
type DataQueryHandler interface {
	Handle(ctx context.Context, prompt string) (models.QueryResult, error)
}

// ChatService routes a prompt to the DAX, data or general strategy.
type ChatService struct {
	generator ai.Generator
	data      DataQueryHandler
	logger    *zap.Logger
}

func NewChatService(generator ai.Generator, data DataQueryHandler, logger *zap.Logger) *ChatService {
	return &ChatService{
		generator: generator,
		data:      data,
		logger:    logger.Named("chat"),
	}
}

// Chat answers one prompt. Any returned error aborts the request.
func (s *ChatService) Chat(ctx context.Context, prompt string) (models.ChatResponse, error) {
	prompt = strings.TrimSpace(prompt)
	route := Classify(prompt)
	s.logger.Debug("classified prompt", zap.String("route", string(route)))

	var (
		resp models.ChatResponse
		err  error
	)
	switch route {
	case models.RouteDAX:
		resp, err = s.generateText(ctx, models.TypeDAX, ai.BuildPrompt(route, prompt))
	case models.RouteDataQuery:
		var result models.QueryResult
		result, err = s.data.Handle(ctx, prompt)
		resp = models.FromQueryResult(result)
	default:
		resp, err = s.generateText(ctx, models.TypeText, ai.BuildPrompt(route, prompt))
	}
	if err != nil {
		observability.ObserveChat(string(route), "failure")
		return models.ChatResponse{}, err
	}

	resp.Route = route
	observability.ObserveChat(string(route), resp.Type)
	return resp, nil
}

func (s *ChatService) generateText(ctx context.Context, responseType, prompt string) (models.ChatResponse, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("failed to generate response: %w", err)
	}
	return models.ChatResponse{
		Type:     responseType,
		Response: strings.TrimSpace(text),
	}, nil
}
