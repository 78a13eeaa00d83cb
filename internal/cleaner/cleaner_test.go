package cleaner

import (
	"context"
	"reflect"
	"testing"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

func testConfig() config.CleanerConfig {
	return config.CleanerConfig{
		MaxGapMs:       2000,
		MinChars:       20,
		MaxParagraphMs: 60_000,
		Fillers:        config.DefaultFillers,
	}
}

func span(start, end int64, text string) transcript.Span {
	return transcript.Span{SourceID: "lec01", StartMs: start, EndMs: end, Text: text}
}

func TestCleanMergesUntilSentenceBreak(t *testing.T) {
	c := New(testConfig(), logger.New("error"))
	spans := []transcript.Span{
		span(0, 1000, "the derivative measures"),
		span(1200, 2500, "the rate of change."),
		span(3000, 4000, "now a fresh thought that stands alone."),
	}

	paras, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if !reflect.DeepEqual(paras[0].SpanIDs, []int{0, 1}) {
		t.Errorf("paragraph 0 spans = %v, want [0 1]", paras[0].SpanIDs)
	}
	if paras[0].StartMs != 0 || paras[0].EndMs != 2500 {
		t.Errorf("paragraph 0 range = [%d, %d], want [0, 2500]", paras[0].StartMs, paras[0].EndMs)
	}
	if paras[1].ParagraphID != 1 {
		t.Errorf("paragraph ids not dense: %d", paras[1].ParagraphID)
	}
}

func TestCleanBreaksOnLongGap(t *testing.T) {
	c := New(testConfig(), logger.New("error"))
	spans := []transcript.Span{
		span(0, 1000, "short bit"),
		span(10_000, 11_000, "after a long silence this continues on."),
	}

	paras, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2 (gap should break)", len(paras))
	}
}

func TestCleanSkipsMalformedAndEmptySpans(t *testing.T) {
	c := New(testConfig(), logger.New("error"))
	spans := []transcript.Span{
		span(0, 1000, "a valid opening statement here."),
		{SourceID: "lec01", StartMs: 5000, EndMs: 4000, Text: "inverted timestamps"},
		span(1200, 1400, "   "),
		span(1500, 2500, "and a valid closing statement too."),
	}

	paras, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	for _, p := range paras {
		for _, id := range p.SpanIDs {
			if id == 1 || id == 2 {
				t.Errorf("paragraph %d references skipped span %d", p.ParagraphID, id)
			}
		}
	}
}

func TestCleanSplitsOverlongSpan(t *testing.T) {
	cfg := testConfig()
	cfg.MaxParagraphMs = 10_000
	c := New(cfg, logger.New("error"))

	spans := []transcript.Span{
		span(0, 30_000, "First sentence of a marathon span. Second sentence keeps going. Third sentence continues. Fourth one closes it."),
	}

	paras, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if len(paras) < 2 {
		t.Fatalf("got %d paragraphs, want a split", len(paras))
	}
	// Pieces stay contiguous in time and all trace back to span 0.
	for i, p := range paras {
		if !reflect.DeepEqual(p.SpanIDs, []int{0}) {
			t.Errorf("paragraph %d spans = %v, want [0]", i, p.SpanIDs)
		}
		if i > 0 && p.StartMs != paras[i-1].EndMs {
			t.Errorf("paragraph %d not contiguous: starts %d, previous ends %d", i, p.StartMs, paras[i-1].EndMs)
		}
	}
	if paras[0].StartMs != 0 || paras[len(paras)-1].EndMs != 30_000 {
		t.Error("split paragraphs do not cover the original span range")
	}
}

func TestCleanIdempotent(t *testing.T) {
	c := New(testConfig(), logger.New("error"))
	spans := []transcript.Span{
		span(0, 1000, "um so the key idea is compactness."),
		span(1100, 2000, "you know every open cover has a finite subcover."),
		span(9000, 10_000, "[music]"),
		span(12_000, 13_000, "that is the whole story for today."),
	}

	first, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Clean(context.Background(), spans)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Clean() is not deterministic across identical runs")
	}
}

func TestCleanEmptyInput(t *testing.T) {
	c := New(testConfig(), logger.New("error"))
	paras, err := c.Clean(context.Background(), nil)
	if err != nil {
		t.Fatalf("Clean(nil) error = %v", err)
	}
	if len(paras) != 0 {
		t.Errorf("got %d paragraphs from empty input, want 0", len(paras))
	}
}

func TestFinalizeText(t *testing.T) {
	c := New(testConfig(), logger.New("error")).(*implCleaner)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fillers removed",
			in:   "um the limit exists you know",
			want: "the limit exists.",
		},
		{
			name: "noise tags removed",
			in:   "[music] the proof follows [applause]",
			want: "the proof follows.",
		},
		{
			name: "sentence punctuation preserved",
			in:   "is this clear? yes it is.",
			want: "is this clear? yes it is.",
		},
		{
			name: "all filler collapses to nothing",
			in:   "um uh hmm",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.finalizeText(tt.in); got != tt.want {
				t.Errorf("finalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
