package styler

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Styler re-renders chapter-tier summaries in alternate presentation styles.
// It only ever reads the chapter summaries (plus chapter titles for headings);
// it never re-segments or re-summarizes from paragraphs.
type Styler interface {
	Render(ctx context.Context, chapters []transcript.Chapter, chapterSummaries []transcript.Summary, styles []string) ([]transcript.StyledSummary, error)
}
