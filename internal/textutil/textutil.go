// Package textutil holds the small text primitives shared by the cleaning,
// segmentation, summarization and analysis stages.
package textutil

import (
	"strings"
	"unicode"
)

// NormalizeSpace collapses runs of whitespace into single spaces and trims.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var sentenceEnders = map[rune]bool{
	'.': true, '!': true, '?': true,
	'。': true, '！': true, '？': true,
}

// EndsWithSentencePunct reports whether s ends with sentence-final punctuation.
func EndsWithSentencePunct(s string) bool {
	trimmed := strings.TrimRight(s, " \t\"')]}")
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return sentenceEnders[runes[len(runes)-1]]
}

// SplitSentences splits text on sentence-final punctuation, keeping the
// punctuation with each sentence. A trailing fragment without punctuation is
// returned as its own sentence.
func SplitSentences(s string) []string {
	var sentences []string
	var buf strings.Builder
	for _, r := range s {
		buf.WriteRune(r)
		if sentenceEnders[r] {
			if sent := strings.TrimSpace(buf.String()); sent != "" {
				sentences = append(sentences, sent)
			}
			buf.Reset()
		}
	}
	if tail := strings.TrimSpace(buf.String()); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// Tokenize lowercases s and splits it into alphanumeric word tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Jaccard computes the Jaccard similarity of two token lists as sets.
// Two empty inputs count as identical.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	setA := make(map[string]bool, len(a))
	for _, t := range a {
		setA[t] = true
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}
	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}

// WordFreq counts token occurrences across the token list.
func WordFreq(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// TruncateAtSentence cuts s to at most maxChars runes, preferring the last
// complete sentence boundary within the limit. An ellipsis marks a mid-sentence
// cut.
func TruncateAtSentence(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 1 {
		return string(runes[:maxChars])
	}
	cut := runes[:maxChars]
	for i := len(cut) - 1; i >= 0; i-- {
		if sentenceEnders[cut[i]] {
			return strings.TrimSpace(string(cut[:i+1]))
		}
	}
	return strings.TrimSpace(string(cut[:maxChars-1])) + "…"
}
