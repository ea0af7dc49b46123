package repository

import (
	"context"
	"errors"

	"docqa/internal/model"
)

// ErrNotFound is returned when no document is stored under the requested ID.
var ErrNotFound = errors.New("document not found")

// DocumentRepository is the document registry. It owns ID assignment;
// callers never set Document.ID themselves.
type DocumentRepository interface {
	// Insert assigns the next sequential ID, stores a copy of doc under it and returns the ID.
	Insert(ctx context.Context, doc model.Document) (string, error)

	// Get returns a copy of the document stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns all documents in insertion order. The slice is never nil.
	List(ctx context.Context) ([]model.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Clear removes every document and restarts ID assignment.
	Clear(ctx context.Context) error
}
