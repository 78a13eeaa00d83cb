package cleaner

import (
	"regexp"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
)

var (
	reNoiseTag  = regexp.MustCompile(`(?i)[\[(](?:music|applause|laughter|laughs|noise|inaudible|silence|crosstalk)[\])]`)
	reDanglingP = regexp.MustCompile(`\s+([,.!?;:])`)
)

// finalizeText applies the full normalization pass to a paragraph whose
// boundaries are already fixed: noise tags and fillers go, whitespace
// collapses, and every sentence ends with punctuation.
func (c *implCleaner) finalizeText(s string) string {
	s = reNoiseTag.ReplaceAllString(s, " ")
	for _, f := range c.fillers {
		s = f.ReplaceAllString(s, " ")
	}
	s = reDanglingP.ReplaceAllString(s, "$1")
	s = textutil.NormalizeSpace(s)
	if s == "" {
		return ""
	}

	sentences := textutil.SplitSentences(s)
	for i, sent := range sentences {
		sentences[i] = autoPunct(sent)
	}
	return strings.Join(sentences, " ")
}

// autoPunct terminates an unpunctuated sentence with a period.
func autoPunct(s string) string {
	if s == "" || textutil.EndsWithSentencePunct(s) {
		return s
	}
	return s + "."
}
