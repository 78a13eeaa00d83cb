package segmenter

import (
	"context"
	"reflect"
	"testing"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

func testConfig() config.SegmenterConfig {
	return config.SegmenterConfig{
		MinGapMs:      10_000,
		MinParagraphs: 1,
		Threshold:     1.5,
		CuePhrases:    config.DefaultCuePhrases,
	}
}

func para(id int, start, end int64, text string) transcript.Paragraph {
	return transcript.Paragraph{
		SourceID:    "lec01",
		ParagraphID: id,
		StartMs:     start,
		EndMs:       end,
		Text:        text,
		SpanIDs:     []int{id},
	}
}

func newTestSegmenter(t *testing.T, cfg config.SegmenterConfig) Segmenter {
	t.Helper()
	s, err := New(cfg, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SegmenterConfig)
	}{
		{"zero threshold", func(c *config.SegmenterConfig) { c.Threshold = 0 }},
		{"negative threshold", func(c *config.SegmenterConfig) { c.Threshold = -1 }},
		{"zero min paragraphs", func(c *config.SegmenterConfig) { c.MinParagraphs = 0 }},
		{"zero min gap", func(c *config.SegmenterConfig) { c.MinGapMs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg, logger.New("error")); err == nil {
				t.Error("New() should reject invalid config")
			}
		})
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	s := newTestSegmenter(t, testConfig())
	chapters, err := s.Segment(context.Background(), nil)
	if err != nil {
		t.Fatalf("Segment(nil) error = %v", err)
	}
	if len(chapters) != 0 {
		t.Errorf("got %d chapters from empty input, want 0", len(chapters))
	}
}

func TestSegmentNoBoundaryIsOneChapter(t *testing.T) {
	s := newTestSegmenter(t, testConfig())
	paras := []transcript.Paragraph{
		para(0, 0, 5000, "limits and continuity of functions."),
		para(1, 5000, 10_000, "continuity of functions and limits."),
		para(2, 10_000, 15_000, "functions limits continuity again."),
	}

	chapters, err := s.Segment(context.Background(), paras)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(chapters))
	}
	if !reflect.DeepEqual(chapters[0].ParagraphIDs, []int{0, 1, 2}) {
		t.Errorf("chapter paragraphs = %v", chapters[0].ParagraphIDs)
	}
	if chapters[0].Title != "Chapter 1" {
		t.Errorf("title = %q, want fallback title", chapters[0].Title)
	}
}

func TestSegmentSplitsOnDiscontinuity(t *testing.T) {
	s := newTestSegmenter(t, testConfig())
	paras := []transcript.Paragraph{
		para(0, 0, 30_000, "matrix multiplication rows columns."),
		para(1, 30_000, 60_000, "rows columns matrix multiplication."),
		para(2, 100_000, 130_000, "integral calculus area under curve."),
		para(3, 130_000, 160_000, "area under curve integral calculus."),
	}

	chapters, err := s.Segment(context.Background(), paras)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chapters))
	}
	if !reflect.DeepEqual(chapters[0].ParagraphIDs, []int{0, 1}) ||
		!reflect.DeepEqual(chapters[1].ParagraphIDs, []int{2, 3}) {
		t.Errorf("chapters = %v / %v", chapters[0].ParagraphIDs, chapters[1].ParagraphIDs)
	}
	if chapters[0].Index != 0 || chapters[1].Index != 1 {
		t.Error("chapter indices not dense")
	}
	if chapters[1].StartMs != 100_000 || chapters[1].EndMs != 160_000 {
		t.Errorf("chapter 1 range = [%d, %d]", chapters[1].StartMs, chapters[1].EndMs)
	}
}

func TestSegmentMergesShortChapterAcrossWeakerBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.MinParagraphs = 2
	s := newTestSegmenter(t, cfg)

	// Middle paragraph is isolated by two qualifying boundaries; the earlier
	// one (15s gap) scores lower than the later one (40s gap), so the short
	// chapter merges left.
	paras := []transcript.Paragraph{
		para(0, 0, 10_000, "alpha beta gamma."),
		para(1, 10_000, 20_000, "beta gamma alpha."),
		para(2, 35_000, 45_000, "delta epsilon zeta."),
		para(3, 85_000, 95_000, "eta theta iota."),
		para(4, 95_000, 105_000, "theta iota eta."),
	}

	chapters, err := s.Segment(context.Background(), paras)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chapters))
	}
	if !reflect.DeepEqual(chapters[0].ParagraphIDs, []int{0, 1, 2}) {
		t.Errorf("chapter 0 = %v, want [0 1 2] (merge across weaker boundary)", chapters[0].ParagraphIDs)
	}
	if !reflect.DeepEqual(chapters[1].ParagraphIDs, []int{3, 4}) {
		t.Errorf("chapter 1 = %v, want [3 4]", chapters[1].ParagraphIDs)
	}
}

func TestSegmentPartitionInvariant(t *testing.T) {
	s := newTestSegmenter(t, testConfig())

	// A spread of gaps and vocabularies; whatever boundaries fire, the
	// output must partition the input exactly.
	var paras []transcript.Paragraph
	words := []string{
		"derivatives slopes tangent lines.",
		"slopes of tangent lines again.",
		"probability of independent events.",
		"matrices and linear transformations.",
		"transformations of linear matrices.",
		"eigenvalues and eigenvectors now.",
		"a completely different closing topic.",
	}
	var cursor int64
	for i, w := range words {
		gap := int64(0)
		if i%3 == 0 && i > 0 {
			gap = 25_000
		}
		start := cursor + gap
		end := start + 8000
		paras = append(paras, para(i, start, end, w))
		cursor = end
	}

	chapters, err := s.Segment(context.Background(), paras)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if err := transcript.ValidatePartition(chapters, len(paras)); err != nil {
		t.Errorf("partition violated: %v", err)
	}
}

func TestInferTitleFromCue(t *testing.T) {
	s := newTestSegmenter(t, testConfig()).(*implSegmenter)

	paras := []transcript.Paragraph{
		para(0, 0, 5000, "in this section convex optimization basics. we start with convexity."),
	}
	if got := s.inferTitle(0, paras); got != "convex optimization basics" {
		t.Errorf("inferTitle() = %q, want %q", got, "convex optimization basics")
	}

	plain := []transcript.Paragraph{
		para(0, 0, 5000, "nothing that looks like an opening."),
	}
	if got := s.inferTitle(3, plain); got != "Chapter 4" {
		t.Errorf("inferTitle() fallback = %q, want %q", got, "Chapter 4")
	}
}
