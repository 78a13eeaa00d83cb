package analyzer

import (
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Keyword tables for the local classification mode, checked in priority
// order: an explicit skip marker beats everything, then exam-relevant
// content, then structure.
var (
	minorMarkers = []string{
		"won't be on the exam", "not on the exam", "you can skip",
		"just an aside", "by the way", "off topic", "optional reading",
	}
	keyMarkers = []string{
		"important", "remember", "must know", "on the exam", "will be tested",
		"theorem", "key point", "crucial", "take note",
	}
	definitionMarkers = []string{
		"definition", "is defined as", "is called", "means that", "refers to", "we define",
	}
	exampleMarkers = []string{
		"for example", "for instance", "e.g.", "such as", "let's compute",
		"consider the", "as an example", "exercise",
	}
	metaMarkers = []string{
		"to summarize", "to sum up", "in conclusion", "first", "next",
		"finally", "let's move on", "today we", "last time",
	}
)

// heuristicLabel classifies one sentence by keyword lookup.
func heuristicLabel(sentence string) string {
	lower := strings.ToLower(sentence)

	for _, m := range minorMarkers {
		if strings.Contains(lower, m) {
			return transcript.LabelMinorContent
		}
	}
	for _, m := range keyMarkers {
		if strings.Contains(lower, m) {
			return transcript.LabelKeyContent
		}
	}
	for _, m := range definitionMarkers {
		if strings.Contains(lower, m) {
			return transcript.LabelDefinition
		}
	}
	for _, m := range exampleMarkers {
		if strings.Contains(lower, m) {
			return transcript.LabelExample
		}
	}
	for _, m := range metaMarkers {
		if strings.Contains(lower, m) {
			return transcript.LabelMeta
		}
	}
	return transcript.LabelMeta
}

func heuristicNote(label string) string {
	switch label {
	case transcript.LabelKeyContent:
		return "explicitly emphasized or core result"
	case transcript.LabelDefinition:
		return "introduces a term or concept"
	case transcript.LabelExample:
		return "worked example or illustration"
	case transcript.LabelMinorContent:
		return "aside or out-of-scope remark"
	default:
		return ""
	}
}
