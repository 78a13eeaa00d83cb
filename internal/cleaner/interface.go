package cleaner

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Cleaner merges raw ASR spans into cleaned paragraphs. Deterministic: the
// same span sequence and configuration always produce identical output.
type Cleaner interface {
	Clean(ctx context.Context, spans []transcript.Span) ([]transcript.Paragraph, error)
}
