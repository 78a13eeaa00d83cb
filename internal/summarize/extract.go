package summarize

import (
	"sort"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
)

// Extractive is the deterministic local fallback summarizer: it scores each
// sentence by the mean corpus frequency of its tokens (a cheap centrality
// measure), selects the highest-scoring sentences that fit the budget, and
// emits them in their original order. It never generates new text.
func Extractive(text string, maxChars int) string {
	text = textutil.NormalizeSpace(text)
	if text == "" || maxChars <= 0 {
		return ""
	}

	sentences := textutil.SplitSentences(text)
	if len(sentences) <= 1 {
		return textutil.TruncateAtSentence(text, maxChars)
	}

	freq := textutil.WordFreq(textutil.Tokenize(text))

	type scored struct {
		index int
		chars int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sent := range sentences {
		tokens := textutil.Tokenize(sent)
		sum := 0
		for _, t := range tokens {
			sum += freq[t]
		}
		score := 0.0
		if len(tokens) > 0 {
			score = float64(sum) / float64(len(tokens))
		}
		ranked[i] = scored{index: i, chars: len([]rune(sent)), score: score}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].index < ranked[b].index
	})

	selected := make(map[int]bool)
	used := 0
	for _, r := range ranked {
		cost := r.chars
		if len(selected) > 0 {
			cost++ // joining space
		}
		if used+cost > maxChars && len(selected) > 0 {
			continue
		}
		selected[r.index] = true
		used += cost
	}

	parts := make([]string, 0, len(selected))
	for i, sent := range sentences {
		if selected[i] {
			parts = append(parts, sent)
		}
	}
	return textutil.TruncateAtSentence(strings.Join(parts, " "), maxChars)
}
