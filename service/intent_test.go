package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newschat/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   models.Route
	}{
		{"dax beats data keywords", "write dax for sentiment", models.RouteDAX},
		{"dax mixed case", "Give me a DAX measure for totals", models.RouteDAX},
		{"record count", "How many records came in today?", models.RouteDataQuery},
		{"list keyword", "list all negative sentiment news", models.RouteDataQuery},
		{"category keyword", "Top CATEGORY by volume", models.RouteDataQuery},
		{"greeting", "hello, how are you", models.RouteGeneral},
		{"empty", "", models.RouteGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prompt))
		})
	}
}
