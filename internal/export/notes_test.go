package export

import (
	"strings"
	"testing"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

func sampleNotes() Notes {
	return Notes{
		Title: "Linear Algebra, Lecture 4",
		Global: transcript.Summary{
			Tier:      transcript.TierGlobal,
			Text:      "The lecture introduces vector spaces and spans.",
			SourceIDs: []int{0, 1},
		},
		Chapters: []transcript.Chapter{
			{Index: 0, Title: "Vector spaces", StartMs: 0, EndMs: 300000, ParagraphIDs: []int{0, 1}},
			{Index: 1, Title: "Span and basis", StartMs: 300000, EndMs: 3900000, ParagraphIDs: []int{2}},
		},
		Summaries: []transcript.Summary{
			{Tier: transcript.TierChapter, Chapter: 0, Text: "Defines vector spaces axiomatically."},
			{Tier: transcript.TierChapter, Chapter: 1, Text: "Builds spans from linear combinations."},
		},
		Styled: []transcript.StyledSummary{
			{
				ChapterIndex: 0,
				Style:        transcript.StyleReview,
				Bullets:      []string{"A vector space is closed under addition.", "Scalars come from a field."},
			},
			{
				ChapterIndex: 1,
				Style:        transcript.StyleExam,
				Bullets:      []string{"The span is the set of all linear combinations."},
				ExamPoints:   []string{"Definition of span"},
				Pitfalls:     []string{"Confusing span with basis"},
			},
		},
		Annotations: []transcript.Annotation{
			{ParagraphID: 0, SentenceIndex: 0, Sentence: "A vector space is defined as a set with two operations.", Label: transcript.LabelDefinition, Note: "core definition"},
			{ParagraphID: 1, SentenceIndex: 0, Sentence: "Let's take a short break.", Label: transcript.LabelMinorContent},
			{ParagraphID: 2, SentenceIndex: 0, Sentence: "Remember the span definition for the exam.", Label: transcript.LabelKeyContent},
		},
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleNotes())

	for _, want := range []string{
		"## Overview",
		"The lecture introduces vector spaces and spans.",
		"## 1. Vector spaces (00:00 - 05:00)",
		"## 2. Span and basis (05:00 - 1:05:00)",
		"**Key points**",
		"- A vector space is closed under addition.",
		"**Exam focus**",
		"**Likely exam points**",
		"- Definition of span",
		"**Common pitfalls**",
		"**Highlighted sentences**",
		"- A vector space is defined as a set with two operations.",
		"- Remember the span definition for the exam.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}

	// Low-importance sentences stay out of the highlights.
	if strings.Contains(md, "short break") {
		t.Error("minor content leaked into highlights")
	}
}

func TestBuildMarkdownHighlightsFollowChapters(t *testing.T) {
	notes := sampleNotes()
	md := BuildMarkdown(notes)

	ch2 := strings.Index(md, "## 2. Span and basis")
	if ch2 < 0 {
		t.Fatal("second chapter heading missing")
	}
	examHL := strings.Index(md, "Remember the span definition")
	if examHL < ch2 {
		t.Error("chapter 2 highlight rendered before its chapter section")
	}
	defHL := strings.Index(md, "defined as a set with two operations")
	if defHL > ch2 {
		t.Error("chapter 1 highlight rendered after chapter 2 heading")
	}
}

func TestBuildMarkdownEmpty(t *testing.T) {
	md := BuildMarkdown(Notes{Title: "Empty run"})
	if strings.Contains(md, "## Overview") {
		t.Error("overview heading rendered with no global summary")
	}
	if strings.Contains(md, "**Key points**") {
		t.Error("key points rendered with no chapters")
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{62500, "01:02"},
		{3599000, "59:59"},
		{3600000, "1:00:00"},
		{7322000, "2:02:02"},
	}
	for _, tt := range tests {
		if got := formatMs(tt.ms); got != tt.want {
			t.Errorf("formatMs(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
