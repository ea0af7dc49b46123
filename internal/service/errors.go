package service

import "errors"

// Error taxonomy of the service layer. Handlers classify with errors.Is;
// adapter failures wrap the adapter's own error so its message is preserved.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("document not found")
	ErrExtraction   = errors.New("text extraction failed")
	ErrCompletion   = errors.New("completion failed")
	ErrArchive      = errors.New("upload archive failed")
)
