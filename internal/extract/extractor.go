// Package extract turns uploaded document bytes into plain text.
package extract

import "context"

// Extractor returns the plain text of every page of a document, in page order.
type Extractor interface {
	ExtractPages(ctx context.Context, content []byte) ([]string, error)
}
