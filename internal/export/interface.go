package export

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Notes is everything that goes into the rendered lecture notes document.
type Notes struct {
	Title       string
	Global      transcript.Summary
	Chapters    []transcript.Chapter
	Summaries   []transcript.Summary
	Styled      []transcript.StyledSummary
	Annotations []transcript.Annotation
}

// Exporter renders assembled notes to a document on disk.
type Exporter interface {
	Export(ctx context.Context, notes Notes, outputPath string) error
	ExportTranscript(ctx context.Context, title string, paragraphs []transcript.Paragraph, outputPath string) error
}
