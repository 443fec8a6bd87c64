package ai

import (
	"strings"

	"newschat/models"
)

// TableName is the only table generated queries may reference.
const TableName = "tbl_sentiment_analysis"

// TableSchema describes TableName for the model. It is prompt context only and
// is never checked against the live database.
const TableSchema = `
Table: tbl_sentiment_analysis
Columns:
- title (Text)
- description (Text)
- category (Text)
- url (URL)
- image (Text)
- provider (Text)
- datePublished (Date)
- sentiment (Text): values are "positive", "negative", or "neutral"
`

// BuildDAXPrompt asks for a DAX expression answering userPrompt.
func BuildDAXPrompt(userPrompt string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString("Based on this table schema, write a DAX expression: ")
	promptBuilder.WriteString(userPrompt)
	promptBuilder.WriteString("\n")
	promptBuilder.WriteString(TableSchema)
	return promptBuilder.String()
}

// BuildSQLPrompt asks for a single SQL Server query against TableName.
func BuildSQLPrompt(userPrompt string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are an expert in SQL Server.\n")
	promptBuilder.WriteString("Write a valid SQL Server query for the following request based on table '" + TableName + "'.\n")
	promptBuilder.WriteString("Use SQL Server syntax only (e.g., FORMAT() for date formatting).\n")
	promptBuilder.WriteString("Table schema:\n")
	promptBuilder.WriteString(TableSchema)
	promptBuilder.WriteString("\nRequest: ")
	promptBuilder.WriteString(userPrompt)
	promptBuilder.WriteString("\n")
	return promptBuilder.String()
}

// BuildPrompt returns the full model prompt for a route. General
// conversation goes to the model as typed.
func BuildPrompt(route models.Route, userPrompt string) string {
	switch route {
	case models.RouteDAX:
		return BuildDAXPrompt(userPrompt)
	case models.RouteDataQuery:
		return BuildSQLPrompt(userPrompt)
	default:
		return userPrompt
	}
}
