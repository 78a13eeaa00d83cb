package pipeline

import (
	"context"
	"fmt"

	"github.com/hoanglm42/lecture-notes/internal/export"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// RunCleaner turns the run's spans into merged, normalized paragraphs.
func (p *implPipeline) RunCleaner(ctx context.Context, run *transcript.Run) error {
	spans, skipped, err := transcript.ReadRecords[transcript.Span](run, transcript.FileSpans)
	if err != nil {
		return fmt.Errorf("cleaner stage: %w", err)
	}
	if skipped > 0 {
		p.logger.Warn(ctx, "Run %s: skipped %d malformed span records", run.ID(), skipped)
	}

	paragraphs, err := p.cleaner.Clean(ctx, spans)
	if err != nil {
		return fmt.Errorf("cleaner stage: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileParagraphs, paragraphs); err != nil {
		return err
	}
	p.logger.Info(ctx, "Run %s: %d spans cleaned into %d paragraphs", run.ID(), len(spans), len(paragraphs))
	return nil
}

// RunSegmenter partitions the run's paragraphs into chapters.
func (p *implPipeline) RunSegmenter(ctx context.Context, run *transcript.Run) error {
	paragraphs, _, err := transcript.ReadRecords[transcript.Paragraph](run, transcript.FileParagraphs)
	if err != nil {
		return fmt.Errorf("segmenter stage: %w", err)
	}

	chapters, err := p.segmenter.Segment(ctx, paragraphs)
	if err != nil {
		return fmt.Errorf("segmenter stage: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileChapters, chapters); err != nil {
		return err
	}
	p.logger.Info(ctx, "Run %s: %d paragraphs segmented into %d chapters", run.ID(), len(paragraphs), len(chapters))
	return nil
}

// RunSummarizer builds the three summary tiers and persists each to its own
// stage file.
func (p *implPipeline) RunSummarizer(ctx context.Context, run *transcript.Run) error {
	paragraphs, _, err := transcript.ReadRecords[transcript.Paragraph](run, transcript.FileParagraphs)
	if err != nil {
		return fmt.Errorf("summarizer stage: %w", err)
	}
	chapters, _, err := transcript.ReadRecords[transcript.Chapter](run, transcript.FileChapters)
	if err != nil {
		return fmt.Errorf("summarizer stage: %w", err)
	}

	result, err := p.summarizer.Summarize(ctx, chapters, paragraphs)
	if err != nil {
		return fmt.Errorf("summarizer stage: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileMicroSummaries, result.Micro); err != nil {
		return err
	}
	if err := transcript.WriteRecords(run, transcript.FileChapterSummaries, result.Chapters); err != nil {
		return err
	}
	if err := transcript.WriteRecords(run, transcript.FileGlobalSummary, []transcript.Summary{result.Global}); err != nil {
		return err
	}
	p.logger.Info(ctx, "Run %s: %d micro, %d chapter summaries written", run.ID(), len(result.Micro), len(result.Chapters))
	return nil
}

// RunStyler re-renders the chapter summaries in the requested styles.
func (p *implPipeline) RunStyler(ctx context.Context, run *transcript.Run, styles []string) error {
	chapters, _, err := transcript.ReadRecords[transcript.Chapter](run, transcript.FileChapters)
	if err != nil {
		return fmt.Errorf("styler stage: %w", err)
	}
	chapterSummaries, _, err := transcript.ReadRecords[transcript.Summary](run, transcript.FileChapterSummaries)
	if err != nil {
		return fmt.Errorf("styler stage: %w", err)
	}

	styled, err := p.styler.Render(ctx, chapters, chapterSummaries, styles)
	if err != nil {
		return fmt.Errorf("styler stage: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileStyledSummaries, styled); err != nil {
		return err
	}
	p.logger.Info(ctx, "Run %s: %d styled summaries written", run.ID(), len(styled))
	return nil
}

// RunAnalyzer annotates every sentence of the run's paragraphs.
func (p *implPipeline) RunAnalyzer(ctx context.Context, run *transcript.Run) error {
	paragraphs, _, err := transcript.ReadRecords[transcript.Paragraph](run, transcript.FileParagraphs)
	if err != nil {
		return fmt.Errorf("analyzer stage: %w", err)
	}

	annotations, err := p.analyzer.Analyze(ctx, paragraphs)
	if err != nil {
		return fmt.Errorf("analyzer stage: %w", err)
	}

	if err := transcript.WriteRecords(run, transcript.FileAnnotations, annotations); err != nil {
		return err
	}
	p.logger.Info(ctx, "Run %s: %d annotations written", run.ID(), len(annotations))
	return nil
}

// RunExport assembles every persisted stage output into the notes document.
// Styled summaries and annotations are optional; the document degrades to
// plain summaries when those stages have not run.
func (p *implPipeline) RunExport(ctx context.Context, run *transcript.Run, title string) error {
	chapters, _, err := transcript.ReadRecords[transcript.Chapter](run, transcript.FileChapters)
	if err != nil {
		return fmt.Errorf("export stage: %w", err)
	}
	chapterSummaries, _, err := transcript.ReadRecords[transcript.Summary](run, transcript.FileChapterSummaries)
	if err != nil {
		return fmt.Errorf("export stage: %w", err)
	}
	globals, _, err := transcript.ReadRecords[transcript.Summary](run, transcript.FileGlobalSummary)
	if err != nil {
		return fmt.Errorf("export stage: %w", err)
	}

	notes := export.Notes{
		Title:     title,
		Chapters:  chapters,
		Summaries: chapterSummaries,
	}
	if len(globals) > 0 {
		notes.Global = globals[0]
	}
	if run.Has(transcript.FileStyledSummaries) {
		styled, _, err := transcript.ReadRecords[transcript.StyledSummary](run, transcript.FileStyledSummaries)
		if err != nil {
			return fmt.Errorf("export stage: %w", err)
		}
		notes.Styled = styled
	}
	if run.Has(transcript.FileAnnotations) {
		annotations, _, err := transcript.ReadRecords[transcript.Annotation](run, transcript.FileAnnotations)
		if err != nil {
			return fmt.Errorf("export stage: %w", err)
		}
		notes.Annotations = annotations
	}

	outputPath := run.Path(transcript.FileNotes)
	if err := p.exporter.Export(ctx, notes, outputPath); err != nil {
		return fmt.Errorf("export stage: %w", err)
	}
	p.logger.Info(ctx, "Run %s: notes written to %s", run.ID(), outputPath)
	return nil
}

// RunTranscriptExport writes the cleaned paragraphs as a plain transcript
// document next to the notes.
func (p *implPipeline) RunTranscriptExport(ctx context.Context, run *transcript.Run, title string) error {
	paragraphs, _, err := transcript.ReadRecords[transcript.Paragraph](run, transcript.FileParagraphs)
	if err != nil {
		return fmt.Errorf("transcript export: %w", err)
	}

	outputPath := run.Path(transcript.FileTranscript)
	if err := p.exporter.ExportTranscript(ctx, title, paragraphs, outputPath); err != nil {
		return fmt.Errorf("transcript export: %w", err)
	}
	p.logger.Info(ctx, "Run %s: transcript written to %s", run.ID(), outputPath)
	return nil
}
