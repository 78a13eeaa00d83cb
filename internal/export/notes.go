package export

import (
	"fmt"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// BuildMarkdown assembles the final notes document as markdown: overview,
// then one section per chapter with its summary, styled bullets, and the
// high-importance sentences the analyzer flagged.
func BuildMarkdown(notes Notes) string {
	var sb strings.Builder

	if notes.Global.Text != "" {
		sb.WriteString("## Overview\n\n")
		sb.WriteString(notes.Global.Text)
		sb.WriteString("\n\n")
	}

	summaryByChapter := make(map[int]transcript.Summary, len(notes.Summaries))
	for _, s := range notes.Summaries {
		summaryByChapter[s.Chapter] = s
	}
	styledByChapter := make(map[int][]transcript.StyledSummary)
	for _, st := range notes.Styled {
		styledByChapter[st.ChapterIndex] = append(styledByChapter[st.ChapterIndex], st)
	}
	highlights := highlightsByChapter(notes.Chapters, notes.Annotations)

	for _, ch := range notes.Chapters {
		fmt.Fprintf(&sb, "## %d. %s (%s - %s)\n\n", ch.Index+1, ch.Title, formatMs(ch.StartMs), formatMs(ch.EndMs))

		if s, ok := summaryByChapter[ch.Index]; ok && s.Text != "" {
			sb.WriteString(s.Text)
			sb.WriteString("\n\n")
		}

		for _, st := range styledByChapter[ch.Index] {
			writeStyled(&sb, st)
		}

		if hl := highlights[ch.Index]; len(hl) > 0 {
			sb.WriteString("**Highlighted sentences**\n\n")
			for _, a := range hl {
				if a.Note != "" {
					fmt.Fprintf(&sb, "- %s _(%s)_\n", a.Sentence, a.Note)
				} else {
					fmt.Fprintf(&sb, "- %s\n", a.Sentence)
				}
			}
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeStyled(sb *strings.Builder, st transcript.StyledSummary) {
	switch st.Style {
	case transcript.StyleExam:
		sb.WriteString("**Exam focus**\n\n")
	default:
		sb.WriteString("**Key points**\n\n")
	}
	for _, b := range st.Bullets {
		fmt.Fprintf(sb, "- %s\n", b)
	}
	sb.WriteString("\n")

	writeList(sb, "Likely exam points", st.ExamPoints)
	writeList(sb, "Question patterns", st.QuestionPatterns)
	writeList(sb, "Common pitfalls", st.Pitfalls)
	writeList(sb, "Tips", st.Tips)
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "**%s**\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

// highlightsByChapter keeps only high-importance annotations, grouped by the
// chapter owning their paragraph.
func highlightsByChapter(chapters []transcript.Chapter, anns []transcript.Annotation) map[int][]transcript.Annotation {
	chapterOf := make(map[int]int)
	for _, ch := range chapters {
		for _, pid := range ch.ParagraphIDs {
			chapterOf[pid] = ch.Index
		}
	}

	out := make(map[int][]transcript.Annotation)
	for _, a := range anns {
		if a.Importance() != "high" {
			continue
		}
		ch, ok := chapterOf[a.ParagraphID]
		if !ok {
			continue
		}
		out[ch] = append(out[ch], a)
	}
	return out
}

// formatMs renders a millisecond offset as h:mm:ss or mm:ss.
func formatMs(ms int64) string {
	total := ms / 1000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
