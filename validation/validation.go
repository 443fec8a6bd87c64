package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxPromptLength bounds a prompt in characters.
const MaxPromptLength = 10000

var (
	ErrEmptyPrompt   = errors.New("prompt must not be empty")
	ErrPromptTooLong = errors.New("prompt exceeds 10000 characters")
)

// ValidatePrompt rejects prompts that are blank or unreasonably long.
// Content is not judged; any non-empty text may go to the model.
func ValidatePrompt(prompt string) error {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return ErrEmptyPrompt
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return ErrPromptTooLong
	}
	return nil
}
