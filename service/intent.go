package service

import (
	"strings"

	"newschat/models"
)

// dataQueryKeywords mark a prompt as a question about the news table.
var dataQueryKeywords = []string{
	"show", "list", "news", "sentiment", "category", "published", "description", "records", "count",
}

type intentRule struct {
	route models.Route
	match func(lower string) bool
}

// intentRules are evaluated in order; the first match wins. DAX must stay
// ahead of the data keywords so "write dax for sentiment" is a DAX request.
var intentRules = []intentRule{
	{
		route: models.RouteDAX,
		match: func(lower string) bool {
			return strings.Contains(lower, "dax") || strings.Contains(lower, "write dax")
		},
	},
	{
		route: models.RouteDataQuery,
		match: func(lower string) bool {
			return containsAny(lower, dataQueryKeywords)
		},
	},
}

// Classify picks the handling route for a prompt by keyword presence.
func Classify(prompt string) models.Route {
	lower := strings.ToLower(prompt)
	for _, rule := range intentRules {
		if rule.match(lower) {
			return rule.route
		}
	}
	return models.RouteGeneral
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
