package summarize

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Result is the full three-tier summary hierarchy for one run.
type Result struct {
	Micro    []transcript.Summary
	Chapters []transcript.Summary
	Global   transcript.Summary
}

// Summarizer produces the micro, chapter and global summary tiers from the
// segmented transcript. The coverage invariants are validated before the
// result is returned: chapter summaries source exactly their chapter's micro
// summaries, and the global summary sources every chapter exactly once.
type Summarizer interface {
	Summarize(ctx context.Context, chapters []transcript.Chapter, paragraphs []transcript.Paragraph) (*Result, error)
}
