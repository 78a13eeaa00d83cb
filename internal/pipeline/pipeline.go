package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Process runs every stage on one recording. Stage outputs are persisted as
// they complete, so a failed run can be resumed stage-by-stage from its run
// directory.
func (p *implPipeline) Process(ctx context.Context, mediaPath string) (*transcript.Run, error) {
	run, err := p.Ingest(ctx, mediaPath)
	if err != nil {
		return nil, err
	}

	if err := p.RunCleaner(ctx, run); err != nil {
		return run, err
	}
	if err := p.RunSegmenter(ctx, run); err != nil {
		return run, err
	}
	if err := p.RunSummarizer(ctx, run); err != nil {
		return run, err
	}
	if err := p.RunStyler(ctx, run, []string{transcript.StyleReview, transcript.StyleExam}); err != nil {
		return run, err
	}
	if err := p.RunAnalyzer(ctx, run); err != nil {
		return run, err
	}

	title := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	if err := p.RunExport(ctx, run, title); err != nil {
		return run, err
	}

	p.logger.Info(ctx, "Run %s completed: %s", run.ID(), run.Dir())
	return run, nil
}

// Ingest transcribes one media file into a fresh run's span file.
func (p *implPipeline) Ingest(ctx context.Context, mediaPath string) (*transcript.Run, error) {
	run, err := p.store.NewRun()
	if err != nil {
		return nil, err
	}
	p.logger.Info(ctx, "Run %s started for %s", run.ID(), mediaPath)

	spans, err := p.transcribe.Transcribe(ctx, mediaPath)
	if err != nil {
		return run, fmt.Errorf("transcribe: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileSpans, spans); err != nil {
		return run, err
	}
	p.logger.Info(ctx, "Run %s: %d spans persisted", run.ID(), len(spans))
	return run, nil
}
