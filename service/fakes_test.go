package service

import (
	"context"

	"newschat/models"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) Name() string  { return "fake" }
func (f *fakeGenerator) Model() string { return "fake-model" }

type fakeExecutor struct {
	result  models.QueryResult
	queries []string
}

func (f *fakeExecutor) Execute(_ context.Context, query string) models.QueryResult {
	f.queries = append(f.queries, query)
	result := f.result
	result.SQL = query
	return result
}
