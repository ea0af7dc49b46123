// Package llm wraps third-party text-generation APIs behind a single Completer interface.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answers without any generated text choice.
var ErrEmptyResponse = errors.New("no response generated")

// Prompt is a single-turn completion request.
// MaxTokens is a generation hint passed to the provider, not a guarantee on output length.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
}

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}
