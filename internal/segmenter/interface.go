package segmenter

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Segmenter partitions the ordered paragraph sequence into contiguous,
// non-overlapping chapters. The output always partitions the input exactly;
// an empty input yields an empty chapter sequence.
type Segmenter interface {
	Segment(ctx context.Context, paragraphs []transcript.Paragraph) ([]transcript.Chapter, error)
}
