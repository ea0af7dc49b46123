package transcript

import (
	"context"
	"testing"

	"docqa/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub_Transcribe(t *testing.T) {
	got, err := NewStub().Transcribe(context.Background(), "talk.mp3", []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, StubTranscript, got)

	// Input is ignored.
	other, err := NewStub().Transcribe(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, got, other)
}

func TestParseTimestamps_Stub(t *testing.T) {
	got := ParseTimestamps(StubTranscript)

	want := []model.Timestamp{
		{Time: "00:00:00", Text: "Welcome to this recording."},
		{Time: "00:00:15", Text: "Introduction to the main topic."},
		{Time: "00:00:45", Text: "Detailed discussion about key concepts."},
		{Time: "00:01:20", Text: "Practical examples and applications."},
		{Time: "00:02:00", Text: "Advanced techniques explained."},
		{Time: "00:02:45", Text: "Best practices and recommendations."},
		{Time: "00:03:30", Text: "Summary and conclusions."},
		{Time: "00:04:00", Text: "Thank you for listening."},
	}
	assert.Equal(t, want, got)
}

func TestParseTimestamps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Timestamp
	}{
		{
			name:  "empty",
			input: "",
			want:  []model.Timestamp{},
		},
		{
			name:  "no entries",
			input: "plain text without markers",
			want:  []model.Timestamp{},
		},
		{
			name:  "single line entries",
			input: "[00:00:01] a [00:00:02]   b  ",
			want: []model.Timestamp{
				{Time: "00:00:01", Text: "a"},
				{Time: "00:00:02", Text: "b"},
			},
		},
		{
			name:  "multi-line text is kept up to the next bracket",
			input: "[00:00:01] first\ncontinued\n[00:00:02] second",
			want: []model.Timestamp{
				{Time: "00:00:01", Text: "first\ncontinued"},
				{Time: "00:00:02", Text: "second"},
			},
		},
		{
			name:  "malformed time is skipped",
			input: "[0:00] nope [00:00:09] yes",
			want: []model.Timestamp{
				{Time: "00:00:09", Text: "yes"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimestamps(tt.input))
		})
	}
}
