package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"newschat/models"
)

func TestBuildSQLPrompt(t *testing.T) {
	prompt := BuildSQLPrompt("list all negative sentiment news")

	assert.True(t, strings.HasPrefix(prompt, "You are an expert in SQL Server.\n"))
	assert.Contains(t, prompt, "based on table 'tbl_sentiment_analysis'")
	assert.Contains(t, prompt, "FORMAT()")
	assert.Contains(t, prompt, TableSchema)
	assert.True(t, strings.HasSuffix(prompt, "Request: list all negative sentiment news\n"))
}

func TestBuildDAXPrompt(t *testing.T) {
	prompt := BuildDAXPrompt("write dax for total positive news")

	assert.True(t, strings.HasPrefix(prompt, "Based on this table schema, write a DAX expression: write dax for total positive news\n"))
	assert.Contains(t, prompt, TableSchema)
}

func TestTableSchemaNamesEveryColumn(t *testing.T) {
	for _, col := range []string{"title", "description", "category", "url", "image", "provider", "datePublished", "sentiment"} {
		assert.Contains(t, TableSchema, "- "+col+" (", col)
	}
	assert.Contains(t, TableSchema, `"positive", "negative", or "neutral"`)
}

func TestBuildPrompt_Routes(t *testing.T) {
	assert.Equal(t, BuildDAXPrompt("x"), BuildPrompt(models.RouteDAX, "x"))
	assert.Equal(t, BuildSQLPrompt("x"), BuildPrompt(models.RouteDataQuery, "x"))
	assert.Equal(t, "hello, how are you", BuildPrompt(models.RouteGeneral, "hello, how are you"))
}
