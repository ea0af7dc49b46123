package model

import "time"

// DocumentType tags how a document's content was produced.
type DocumentType string

const (
	DocumentTypePDF   DocumentType = "pdf"
	DocumentTypeMedia DocumentType = "media"
)

// Timestamp is one entry of a media transcript.
type Timestamp struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

// Document represents one uploaded PDF or media item held by the registry.
// Timestamps is set only for media documents.
type Document struct {
	ID         string       `json:"id"`
	Filename   string       `json:"filename"`
	Content    string       `json:"content"`
	Type       DocumentType `json:"type"`
	Timestamps []Timestamp  `json:"timestamps,omitempty"`
	ArchiveKey string       `json:"archive_key,omitempty"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

// IsMedia reports whether the document came from the media upload path.
func (d *Document) IsMedia() bool {
	return d.Type == DocumentTypeMedia
}
