package segmenter

import (
	"fmt"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// boundary is a candidate chapter break before paragraph at position index.
type boundary struct {
	index int // position of the first paragraph of the would-be new chapter
	score float64
	gapMs int64
}

// scoreBoundary combines the discontinuity signals between two adjacent
// paragraphs: elapsed silence, lexical dissimilarity, and an opening cue
// phrase in the right-hand paragraph. A gap at or above MinGapMs contributes
// a full point and keeps growing (capped) so longer silences win tie-breaks
// structurally, not just nominally.
func (s *implSegmenter) scoreBoundary(prev, cur transcript.Paragraph) (float64, int64) {
	gap := cur.StartMs - prev.EndMs
	if gap < 0 {
		gap = 0
	}

	gapScore := float64(gap) / float64(s.cfg.MinGapMs)
	if gapScore > 2 {
		gapScore = 2
	}

	dissim := 1 - textutil.Jaccard(textutil.Tokenize(prev.Text), textutil.Tokenize(cur.Text))

	cueScore := 0.0
	if s.hasOpeningCue(cur.Text) {
		cueScore = 1
	}

	return gapScore + dissim + cueScore, gap
}

// hasOpeningCue reports whether the paragraph starts with (or leads into) a
// configured chapter-opening phrase. Only the head of the paragraph counts;
// a cue buried mid-paragraph is not an opening.
func (s *implSegmenter) hasOpeningCue(text string) bool {
	head := strings.ToLower(text)
	if r := []rune(head); len(r) > 80 {
		head = string(r[:80])
	}
	for _, cue := range s.cues {
		if strings.Contains(head, cue) {
			return true
		}
	}
	return false
}

// inferTitle derives a chapter title from the first opening cue found in the
// chapter's paragraphs, falling back to a positional name.
func (s *implSegmenter) inferTitle(index int, paragraphs []transcript.Paragraph) string {
	for _, p := range paragraphs {
		lower := strings.ToLower(p.Text)
		for _, cue := range s.cues {
			pos := strings.Index(lower, cue)
			if pos < 0 {
				continue
			}
			tail := p.Text[pos+len(cue):]
			if t := titleFromTail(tail); t != "" {
				return t
			}
		}
	}
	return defaultTitle(index)
}

// titleFromTail trims the text following a cue phrase into a short title.
func titleFromTail(tail string) string {
	tail = strings.TrimLeft(tail, " ,:;-")
	if i := strings.IndexAny(tail, ".!?。！？,，"); i >= 0 {
		tail = tail[:i]
	}
	tail = textutil.NormalizeSpace(tail)
	runes := []rune(tail)
	if len(runes) < 3 {
		return ""
	}
	if len(runes) > 48 {
		tail = textutil.NormalizeSpace(string(runes[:48]))
	}
	return tail
}

func defaultTitle(index int) string {
	return fmt.Sprintf("Chapter %d", index+1)
}
