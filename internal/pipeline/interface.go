package pipeline

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Pipeline drives a recording through every stage: transcription, cleaning,
// chapter segmentation, summarization, styling, focus analysis and export.
// Each stage reads its input from the run directory and persists its output
// there, so any stage can be re-run against an existing run.
type Pipeline interface {
	// Process runs the full pipeline on one media file and returns the run.
	Process(ctx context.Context, mediaPath string) (*transcript.Run, error)

	// Ingest transcribes a media file into a fresh run's span file.
	Ingest(ctx context.Context, mediaPath string) (*transcript.Run, error)

	RunCleaner(ctx context.Context, run *transcript.Run) error
	RunSegmenter(ctx context.Context, run *transcript.Run) error
	RunSummarizer(ctx context.Context, run *transcript.Run) error
	RunStyler(ctx context.Context, run *transcript.Run, styles []string) error
	RunAnalyzer(ctx context.Context, run *transcript.Run) error
	RunExport(ctx context.Context, run *transcript.Run, title string) error
	RunTranscriptExport(ctx context.Context, run *transcript.Run, title string) error

	// Store gives access to the underlying run store, for opening existing
	// runs by id.
	Store() *transcript.Store
}
