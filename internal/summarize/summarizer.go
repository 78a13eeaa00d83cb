package summarize

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// EmptyChapterText marks a chapter that produced no usable text. The chapter
// still occupies its index in the hierarchy so global aggregation accounts
// for it.
const EmptyChapterText = "No usable content was transcribed for this chapter."

const (
	microPrompt   = "Summarize this lecture excerpt in a few sentences, keeping concrete facts, terms and definitions:"
	chapterPrompt = "Combine these partial summaries of one lecture chapter into a single coherent chapter summary:"
	globalPrompt  = "Combine these chapter summaries into a single overview of the whole lecture:"
)

// Summarize builds the three tiers bottom-up. Micro windows are computed
// sequentially so their ids are deterministic, then summarized concurrently;
// results are reassembled by index, so concurrent execution never changes
// output order or content relative to a sequential run.
func (s *implSummarizer) Summarize(ctx context.Context, chapters []transcript.Chapter, paragraphs []transcript.Paragraph) (*Result, error) {
	paraByID := make(map[int]transcript.Paragraph, len(paragraphs))
	for _, p := range paragraphs {
		paraByID[p.ParagraphID] = p
	}

	type microJob struct {
		scopeID int
		chapter int
		paraIDs []int
		startMs int64
		endMs   int64
		text    string
	}

	var jobs []microJob
	for _, ch := range chapters {
		usable := make([]int, 0, len(ch.ParagraphIDs))
		for _, pid := range ch.ParagraphIDs {
			if p, ok := paraByID[pid]; ok && strings.TrimSpace(p.Text) != "" {
				usable = append(usable, pid)
			}
		}
		for _, w := range windows(usable, s.cfg.WindowSize, s.cfg.WindowOverlap) {
			texts := make([]string, 0, len(w))
			for _, pid := range w {
				texts = append(texts, paraByID[pid].Text)
			}
			jobs = append(jobs, microJob{
				scopeID: len(jobs),
				chapter: ch.Index,
				paraIDs: w,
				startMs: paraByID[w[0]].StartMs,
				endMs:   paraByID[w[len(w)-1]].EndMs,
				text:    strings.Join(texts, " "),
			})
		}
	}

	micro := make([]transcript.Summary, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, job := range jobs {
		g.Go(func() error {
			micro[i] = transcript.Summary{
				Tier:      transcript.TierMicro,
				ScopeID:   job.scopeID,
				Chapter:   job.chapter,
				StartMs:   job.startMs,
				EndMs:     job.endMs,
				Text:      s.reduce(gctx, []string{job.text}, s.cfg.MicroBudget, microPrompt),
				SourceIDs: job.paraIDs,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("micro tier: %w", err)
	}

	microByChapter := make(map[int][]transcript.Summary)
	for _, m := range micro {
		microByChapter[m.Chapter] = append(microByChapter[m.Chapter], m)
	}

	chapterSums := make([]transcript.Summary, len(chapters))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, ch := range chapters {
		g.Go(func() error {
			chapterSums[i] = s.summarizeChapter(gctx, ch, microByChapter[ch.Index])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("chapter tier: %w", err)
	}

	global := s.summarizeGlobal(ctx, chapterSums)

	if err := transcript.ValidateCoverage(micro, chapterSums, global); err != nil {
		return nil, fmt.Errorf("summary coverage invariant: %w", err)
	}
	return &Result{Micro: micro, Chapters: chapterSums, Global: global}, nil
}

func (s *implSummarizer) summarizeChapter(ctx context.Context, ch transcript.Chapter, micros []transcript.Summary) transcript.Summary {
	sum := transcript.Summary{
		Tier:      transcript.TierChapter,
		ScopeID:   ch.Index,
		Chapter:   ch.Index,
		StartMs:   ch.StartMs,
		EndMs:     ch.EndMs,
		SourceIDs: []int{},
	}
	if len(micros) == 0 {
		sum.Text = EmptyChapterText
		return sum
	}

	texts := make([]string, 0, len(micros))
	for _, m := range micros {
		sum.SourceIDs = append(sum.SourceIDs, m.ScopeID)
		texts = append(texts, m.Text)
	}
	sum.Text = s.reduce(ctx, texts, s.cfg.ChapterBudget, chapterPrompt)
	return sum
}

func (s *implSummarizer) summarizeGlobal(ctx context.Context, chapterSums []transcript.Summary) transcript.Summary {
	global := transcript.Summary{
		Tier:      transcript.TierGlobal,
		SourceIDs: []int{},
	}
	if len(chapterSums) == 0 {
		return global
	}

	texts := make([]string, 0, len(chapterSums))
	for _, cs := range chapterSums {
		global.SourceIDs = append(global.SourceIDs, cs.ScopeID)
		if cs.Text != EmptyChapterText {
			texts = append(texts, cs.Text)
		}
	}
	global.StartMs = chapterSums[0].StartMs
	global.EndMs = chapterSums[len(chapterSums)-1].EndMs
	if len(texts) == 0 {
		global.Text = EmptyChapterText
		return global
	}
	global.Text = s.reduce(ctx, texts, s.cfg.GlobalBudget, globalPrompt)
	return global
}

// reduce aggregates ordered texts into one text within budget. Over-budget
// input is re-summarized for up to ReductionPasses rounds (summarize the
// summaries); if the text still exceeds the budget after that, it is cut at a
// sentence boundary so the stage always terminates within budget.
func (s *implSummarizer) reduce(ctx context.Context, texts []string, budget int, prompt string) string {
	combined := textutil.NormalizeSpace(strings.Join(texts, " "))

	for pass := 0; pass < s.cfg.ReductionPasses; pass++ {
		if len([]rune(combined)) <= budget {
			return combined
		}
		combined = s.condenseOnce(ctx, combined, budget, prompt)
	}
	if len([]rune(combined)) > budget {
		combined = textutil.TruncateAtSentence(combined, budget)
	}
	return combined
}

// condenseOnce performs one reduction round: the configured generator when
// available, the local extractive method otherwise or on any failure.
func (s *implSummarizer) condenseOnce(ctx context.Context, text string, budget int, prompt string) string {
	if s.gen != nil {
		out, err := s.gen.Generate(ctx, prompt+"\n\n"+text, budget)
		if err != nil {
			s.logger.Warn(ctx, "Generator failed, using extractive fallback: %v", err)
		} else if out = textutil.NormalizeSpace(out); out != "" && len([]rune(out)) < len([]rune(text)) {
			return out
		}
	}
	return Extractive(text, budget)
}
