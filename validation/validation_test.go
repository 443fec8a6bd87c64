package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   error
	}{
		{"normal", "list all negative sentiment news", nil},
		{"single word", "hi", nil},
		{"empty", "", ErrEmptyPrompt},
		{"whitespace", " \t\n ", ErrEmptyPrompt},
		{"at limit", strings.Repeat("a", MaxPromptLength), nil},
		{"limit counts characters not bytes", strings.Repeat("é", MaxPromptLength), nil},
		{"padding ignored", "  " + strings.Repeat("a", MaxPromptLength) + "  ", nil},
		{"too long", strings.Repeat("a", MaxPromptLength+1), ErrPromptTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidatePrompt(tt.prompt), tt.want)
		})
	}
}
