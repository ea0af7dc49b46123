package service

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docqa/internal/extract"
	"docqa/internal/model"
	"docqa/internal/repository"
	"docqa/internal/storage"
	"docqa/internal/transcript"
)

const (
	pdfUploadedMessage   = "PDF uploaded successfully"
	mediaUploadedMessage = "Media uploaded successfully"
)

// UploadResult is returned to the uploader after a document has been registered.
type UploadResult struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename"`
	Timestamps []model.Timestamp `json:"timestamps,omitempty"`
	Message    string            `json:"message"`
}

// DocumentListResult is the service-level DTO for the document listing.
type DocumentListResult struct {
	Items []model.Document `json:"documents"`
}

// DocumentService defines the use cases for registering and reading documents.
type DocumentService interface {
	// UploadPDF extracts the text of a PDF and registers it. The filename must end in ".pdf".
	UploadPDF(ctx context.Context, content []byte, filename string) (*UploadResult, error)

	// UploadMedia registers a media upload with its (stub) transcript. Any filename is accepted.
	UploadMedia(ctx context.Context, content []byte, filename string) (*UploadResult, error)

	// List returns every registered document in insertion order.
	List(ctx context.Context) (*DocumentListResult, error)

	// Count returns the number of registered documents.
	Count(ctx context.Context) (int, error)

	// Clear drops every document. Administrative and test use only.
	Clear(ctx context.Context) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo        repository.DocumentRepository
	extractor   extract.Extractor
	transcriber transcript.Transcriber
	archive     storage.Storage
	logger      *zap.Logger
	now         func() time.Time
}

// NewDocumentService constructs a new DocumentService.
// archive may be nil, in which case raw uploads are not archived.
func NewDocumentService(
	repo repository.DocumentRepository,
	extractor extract.Extractor,
	transcriber transcript.Transcriber,
	archive storage.Storage,
	logger *zap.Logger,
) DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &documentService{
		repo:        repo,
		extractor:   extractor,
		transcriber: transcriber,
		archive:     archive,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *documentService) UploadPDF(ctx context.Context, content []byte, filename string) (*UploadResult, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return nil, fmt.Errorf("%w: only PDF files allowed", ErrInvalidInput)
	}

	pages, err := s.extractor.ExtractPages(ctx, content)
	if err != nil {
		s.logger.Warn("pdf extraction failed", zap.String("filename", filename), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	var text strings.Builder
	for _, page := range pages {
		text.WriteString(page)
		text.WriteByte('\n')
	}

	doc := model.Document{
		Filename: filename,
		Content:  text.String(),
		Type:     model.DocumentTypePDF,
	}
	id, err := s.register(ctx, doc, content, "application/pdf")
	if err != nil {
		return nil, err
	}

	s.logger.Info("document registered",
		zap.String("document_id", id),
		zap.String("type", string(model.DocumentTypePDF)),
		zap.Int("pages", len(pages)),
	)
	return &UploadResult{ID: id, Filename: filename, Message: pdfUploadedMessage}, nil
}

func (s *documentService) UploadMedia(ctx context.Context, content []byte, filename string) (*UploadResult, error) {
	text, err := s.transcriber.Transcribe(ctx, filename, content)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	timestamps := transcript.ParseTimestamps(text)

	doc := model.Document{
		Filename:   filename,
		Content:    text,
		Type:       model.DocumentTypeMedia,
		Timestamps: timestamps,
	}
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	id, err := s.register(ctx, doc, content, contentType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document registered",
		zap.String("document_id", id),
		zap.String("type", string(model.DocumentTypeMedia)),
		zap.Int("timestamps", len(timestamps)),
	)
	return &UploadResult{ID: id, Filename: filename, Timestamps: timestamps, Message: mediaUploadedMessage}, nil
}

// register archives the raw upload (when an archive is configured) and inserts the record.
// If the insert fails the archived object is removed again, so a failed upload leaves no trace.
func (s *documentService) register(ctx context.Context, doc model.Document, raw []byte, contentType string) (string, error) {
	if s.archive != nil {
		key := path.Join("uploads", string(doc.Type), uuid.NewString()+filepath.Ext(doc.Filename))
		info, err := s.archive.Put(ctx, key, bytes.NewReader(raw), storage.PutObjectOptions{
			Size:        int64(len(raw)),
			ContentType: contentType,
			Metadata: map[string]string{
				"original-filename": doc.Filename,
			},
		})
		if err != nil {
			s.logger.Warn("upload archive failed", zap.String("filename", doc.Filename), zap.Error(err))
			return "", fmt.Errorf("%w: %w", ErrArchive, err)
		}
		doc.ArchiveKey = info.Key
	}

	doc.UploadedAt = s.now()
	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		if doc.ArchiveKey != "" {
			if delErr := s.archive.Delete(context.WithoutCancel(ctx), doc.ArchiveKey); delErr != nil {
				return "", fmt.Errorf("register document failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return "", fmt.Errorf("register document failed: %w", err)
	}
	return id, nil
}

func (s *documentService) List(ctx context.Context) (*DocumentListResult, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: items}, nil
}

func (s *documentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *documentService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
