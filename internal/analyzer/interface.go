package analyzer

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Analyzer produces sentence-level importance annotations for cleaned
// paragraphs. Two modes share one output shape: LLM-backed analysis and a
// local keyword heuristic. LLM failures degrade to the heuristic for the
// affected paragraph only.
type Analyzer interface {
	Analyze(ctx context.Context, paragraphs []transcript.Paragraph) ([]transcript.Annotation, error)
}
