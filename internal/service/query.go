package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"docqa/internal/llm"
	"docqa/internal/model"
	"docqa/internal/repository"
)

const (
	// ContextLimit is the number of leading characters of a document sent as prompt context.
	ContextLimit = 3000

	ChatSystemPrompt    = "You are a helpful assistant. Answer based on the document context."
	SummarySystemPrompt = "Provide a concise summary."

	ChatMaxTokens    = 300
	SummaryMaxTokens = 200
)

var (
	summaryCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docqa_summary_cache_hits_total",
		Help: "Summaries served from the summary cache.",
	})
	summaryCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docqa_summary_cache_misses_total",
		Help: "Summaries that required a completion call.",
	})
)

// ChatResult is the answer to a question about a document.
// Timestamps is set only when the document is a media document.
type ChatResult struct {
	Answer     string            `json:"answer"`
	Timestamps []model.Timestamp `json:"timestamps,omitempty"`
}

// SummaryResult is the summary of a document.
type SummaryResult struct {
	Summary string `json:"summary"`
}

// QueryService answers questions about, and summarizes, registered documents.
type QueryService interface {
	Chat(ctx context.Context, documentID, question string) (*ChatResult, error)
	Summarize(ctx context.Context, documentID string) (*SummaryResult, error)
}

// QueryConfig tunes the query service.
type QueryConfig struct {
	// Timeout bounds each completion call. Zero means no extra bound beyond ctx.
	Timeout time.Duration
	// SummaryCacheSize is the number of cached summaries. Zero disables the cache.
	SummaryCacheSize int
	SummaryCacheTTL  time.Duration
}

type queryService struct {
	repo      repository.DocumentRepository
	completer llm.Completer
	timeout   time.Duration
	summaries *expirable.LRU[string, string]
	logger    *zap.Logger
}

// NewQueryService constructs a new QueryService.
func NewQueryService(repo repository.DocumentRepository, completer llm.Completer, cfg QueryConfig, logger *zap.Logger) QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &queryService{
		repo:      repo,
		completer: completer,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
	if cfg.SummaryCacheSize > 0 {
		s.summaries = expirable.NewLRU[string, string](cfg.SummaryCacheSize, nil, cfg.SummaryCacheTTL)
	}
	return s
}

func (s *queryService) Chat(ctx context.Context, documentID, question string) (*ChatResult, error) {
	doc, err := s.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	answer, err := s.complete(ctx, doc.ID, llm.Prompt{
		System:    ChatSystemPrompt,
		User:      fmt.Sprintf("Context: %s\n\nQuestion: %s", truncate(doc.Content, ContextLimit), question),
		MaxTokens: ChatMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	res := &ChatResult{Answer: answer}
	if doc.IsMedia() {
		res.Timestamps = doc.Timestamps
	}
	return res, nil
}

func (s *queryService) Summarize(ctx context.Context, documentID string) (*SummaryResult, error) {
	doc, err := s.document(ctx, documentID)
	if err != nil {
		return nil, err
	}

	// IDs restart after a registry reset, so the upload time is part of the key.
	key := doc.ID + "@" + doc.UploadedAt.Format(time.RFC3339Nano)
	if s.summaries != nil {
		if summary, ok := s.summaries.Get(key); ok {
			summaryCacheHits.Inc()
			return &SummaryResult{Summary: summary}, nil
		}
		summaryCacheMisses.Inc()
	}

	summary, err := s.complete(ctx, doc.ID, llm.Prompt{
		System:    SummarySystemPrompt,
		User:      "Summarize: " + truncate(doc.Content, ContextLimit),
		MaxTokens: SummaryMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if s.summaries != nil {
		s.summaries.Add(key, summary)
	}
	return &SummaryResult{Summary: summary}, nil
}

func (s *queryService) document(ctx context.Context, id string) (*model.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *queryService) complete(ctx context.Context, documentID string, p llm.Prompt) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.completer.Complete(ctx, p)
	if err != nil {
		s.logger.Warn("completion failed", zap.String("document_id", documentID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	return out, nil
}

// truncate returns the first n characters (code points) of s. It slices the raw
// string at a rune boundary, so invalid UTF-8 bytes pass through unchanged.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
