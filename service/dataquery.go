package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"newschat/ai"
	"newschat/models"
)

// TodayCountQuery answers "how many records ... today" without the model.
// The half-open range keeps rows with a time component.
const TodayCountQuery = `SELECT COUNT(*) AS RecordsIngestedToday
FROM tbl_sentiment_analysis
WHERE datePublished >= CAST(GETDATE() AS DATE)
  AND datePublished < DATEADD(day, 1, CAST(GETDATE() AS DATE));`

// Executor runs one SQL statement and reports the outcome as data.
type Executor interface {
	Execute(ctx context.Context, query string) models.QueryResult
}

// DataQueryService turns a data question into SQL and runs it.
type DataQueryService struct {
	generator ai.Generator
	executor  Executor
	logger    *zap.Logger
}

func NewDataQueryService(generator ai.Generator, executor Executor, logger *zap.Logger) *DataQueryService {
	return &DataQueryService{
		generator: generator,
		executor:  executor,
		logger:    logger.Named("dataquery"),
	}
}

func isTodayCount(prompt string) bool {
	lower := strings.ToLower(prompt)
	return strings.Contains(lower, "how many records") && strings.Contains(lower, "today")
}

// Handle answers a data question. The returned error is reserved for model
// failures; execution problems are reported inside the QueryResult.
func (d *DataQueryService) Handle(ctx context.Context, prompt string) (models.QueryResult, error) {
	if isTodayCount(prompt) {
		d.logger.Debug("using fixed today-count query")
		return d.executor.Execute(ctx, TodayCountQuery), nil
	}

	generated, err := d.generator.Generate(ctx, ai.BuildSQLPrompt(prompt))
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("failed to generate SQL: %w", err)
	}

	query := PatchDialect(ai.ExtractSQL(generated))
	d.logger.Debug("generated SQL", zap.String("sql", query))

	return d.executor.Execute(ctx, query), nil
}
