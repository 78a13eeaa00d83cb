package asr

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Transcriber turns a media file (video or audio) into timestamped spans.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) ([]transcript.Span, error)
}
