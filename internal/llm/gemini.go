package llm

import (
	"context"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiCompleter talks to the Google Gemini API.
// The client is created on first use so a missing key surfaces as a call-time error.
type GeminiCompleter struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiCompleter returns a lazily-connected Gemini completer.
func NewGeminiCompleter(apiKey, model string) *GeminiCompleter {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiCompleter{apiKey: apiKey, modelName: model}
}

var _ Completer = (*GeminiCompleter)(nil)

func (s *GeminiCompleter) getClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// Complete sends the user text with the system text as system instruction and
// concatenates the text parts of every candidate.
func (s *GeminiCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(s.modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(p.System))
	if p.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(p.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(p.User))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String(), nil
}

// Close releases the underlying client, if one was created.
func (s *GeminiCompleter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
