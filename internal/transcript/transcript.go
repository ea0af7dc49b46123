// Package transcript produces timestamped transcripts for media uploads.
//
// Only a placeholder implementation exists: Stub returns the same canned
// transcript for every upload and never inspects the media bytes.
package transcript

import (
	"context"
	"regexp"
	"strings"

	"docqa/internal/model"
)

// Transcriber turns a media upload into a transcript made of "[HH:MM:SS] text" entries.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, content []byte) (string, error)
}

// StubTranscript is the fixed transcript returned by Stub.
const StubTranscript = `[00:00:00] Welcome to this recording.
[00:00:15] Introduction to the main topic.
[00:00:45] Detailed discussion about key concepts.
[00:01:20] Practical examples and applications.
[00:02:00] Advanced techniques explained.
[00:02:45] Best practices and recommendations.
[00:03:30] Summary and conclusions.
[00:04:00] Thank you for listening.`

// Stub is a placeholder Transcriber. It is not speech-to-text.
type Stub struct{}

// NewStub returns the placeholder transcriber.
func NewStub() *Stub {
	return &Stub{}
}

var _ Transcriber = (*Stub)(nil)

// Transcribe ignores its input and returns StubTranscript.
func (Stub) Transcribe(_ context.Context, _ string, _ []byte) (string, error) {
	return StubTranscript, nil
}

// entryPattern captures "[HH:MM:SS]" and the text after it up to the next '[' or end of input.
// The text group needs at least one character, which may itself be '['.
var entryPattern = regexp.MustCompile(`(?s)\[(\d{2}:\d{2}:\d{2})\]\s*(.[^\[]*)`)

// ParseTimestamps extracts the ordered timestamp entries of a transcript.
// Captured text is trimmed of surrounding whitespace. Input without entries yields an empty slice.
func ParseTimestamps(transcript string) []model.Timestamp {
	matches := entryPattern.FindAllStringSubmatch(transcript, -1)
	out := make([]model.Timestamp, 0, len(matches))
	for _, m := range matches {
		out = append(out, model.Timestamp{
			Time: m[1],
			Text: strings.TrimSpace(m[2]),
		})
	}
	return out
}
