package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"docqa/internal/model"
	"docqa/internal/repository"
)

// DocumentMemory is an in-memory implementation of repository.DocumentRepository.
// It is safe for concurrent use. IDs come from a counter guarded by the same lock
// as the map, so two concurrent inserts never receive the same ID.
type DocumentMemory struct {
	mu    sync.RWMutex
	next  int
	docs  map[string]model.Document
	order []string
}

// NewDocumentMemory creates an empty in-memory document registry.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{docs: make(map[string]model.Document)}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Insert stores doc under the next sequential decimal ID ("1", "2", ...).
func (r *DocumentMemory) Insert(ctx context.Context, doc model.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	id := strconv.Itoa(r.next)
	doc.ID = id
	doc.Timestamps = slices.Clone(doc.Timestamps)
	r.docs[id] = doc
	r.order = append(r.order, id)
	return id, nil
}

// Get returns a copy of the stored document.
func (r *DocumentMemory) Get(_ context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	doc.Timestamps = slices.Clone(doc.Timestamps)
	return &doc, nil
}

// List returns copies of all documents in insertion order.
func (r *DocumentMemory) List(_ context.Context) ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Document, 0, len(r.order))
	for _, id := range r.order {
		doc := r.docs[id]
		doc.Timestamps = slices.Clone(doc.Timestamps)
		items = append(items, doc)
	}
	return items, nil
}

// Count returns the number of stored documents.
func (r *DocumentMemory) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs), nil
}

// Clear drops every document and resets the ID counter.
func (r *DocumentMemory) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next = 0
	r.docs = make(map[string]model.Document)
	r.order = nil
	return nil
}
