package segmenter

import (
	"context"
	"fmt"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Segment places chapter boundaries where the discontinuity score between
// adjacent paragraphs reaches the configured threshold, then merges chapters
// that fall below the minimum length into their weaker-boundary neighbor.
func (s *implSegmenter) Segment(ctx context.Context, paragraphs []transcript.Paragraph) ([]transcript.Chapter, error) {
	n := len(paragraphs)
	if n == 0 {
		return []transcript.Chapter{}, nil
	}

	byIndex := make(map[int]boundary, n)
	var cuts []int
	for i := 1; i < n; i++ {
		score, gap := s.scoreBoundary(paragraphs[i-1], paragraphs[i])
		byIndex[i] = boundary{index: i, score: score, gapMs: gap}
		if score >= s.cfg.Threshold {
			cuts = append(cuts, i)
		}
	}
	s.logger.Debug(ctx, "Segmenter: %d candidate boundaries over %d paragraphs", len(cuts), n)

	cuts = s.enforceMinLength(cuts, n, byIndex)

	chapters := s.buildChapters(paragraphs, cuts)
	if err := transcript.ValidatePartition(chapters, n); err != nil {
		return nil, fmt.Errorf("chapter partition invariant: %w", err)
	}
	return chapters, nil
}

// enforceMinLength drops cuts until every chapter holds at least
// MinParagraphs paragraphs. A too-short chapter merges across whichever of
// its bounding cuts scored lower; ties keep the boundary with the larger
// time gap.
func (s *implSegmenter) enforceMinLength(cuts []int, n int, byIndex map[int]boundary) []int {
	for len(cuts) > 0 {
		short := -1 // index into the chapter list formed by cuts
		starts := chapterStarts(cuts, n)
		for ci := 0; ci < len(starts); ci++ {
			end := n
			if ci+1 < len(starts) {
				end = starts[ci+1]
			}
			if end-starts[ci] < s.cfg.MinParagraphs {
				short = ci
				break
			}
		}
		if short < 0 {
			break
		}

		// Pick the bounding cut to remove. The first chapter only has a right
		// cut, the last only a left one.
		var candidates []int
		if short > 0 {
			candidates = append(candidates, starts[short])
		}
		if short+1 < len(starts) {
			candidates = append(candidates, starts[short+1])
		}

		remove := candidates[0]
		if len(candidates) == 2 {
			a, b := byIndex[candidates[0]], byIndex[candidates[1]]
			switch {
			case a.score < b.score:
				remove = a.index
			case b.score < a.score:
				remove = b.index
			case a.gapMs < b.gapMs:
				// Equal scores: keep the boundary with the larger gap.
				remove = a.index
			default:
				remove = b.index
			}
		}

		cuts = removeCut(cuts, remove)
	}
	return cuts
}

func chapterStarts(cuts []int, n int) []int {
	starts := make([]int, 0, len(cuts)+1)
	starts = append(starts, 0)
	starts = append(starts, cuts...)
	return starts
}

func removeCut(cuts []int, cut int) []int {
	out := cuts[:0]
	for _, c := range cuts {
		if c != cut {
			out = append(out, c)
		}
	}
	return out
}

func (s *implSegmenter) buildChapters(paragraphs []transcript.Paragraph, cuts []int) []transcript.Chapter {
	n := len(paragraphs)
	starts := chapterStarts(cuts, n)

	chapters := make([]transcript.Chapter, 0, len(starts))
	for ci, start := range starts {
		end := n
		if ci+1 < len(starts) {
			end = starts[ci+1]
		}
		members := paragraphs[start:end]
		ids := make([]int, 0, len(members))
		for _, p := range members {
			ids = append(ids, p.ParagraphID)
		}
		chapters = append(chapters, transcript.Chapter{
			Index:        ci,
			Title:        s.inferTitle(ci, members),
			StartMs:      members[0].StartMs,
			EndMs:        members[len(members)-1].EndMs,
			ParagraphIDs: ids,
		})
	}
	return chapters
}
