package styler

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

const maxBullets = 6

// Render produces one styled rendering per chapter summary per requested
// style, in chapter order.
func (s *implStyler) Render(ctx context.Context, chapters []transcript.Chapter, chapterSummaries []transcript.Summary, styles []string) ([]transcript.StyledSummary, error) {
	for _, style := range styles {
		if style != transcript.StyleReview && style != transcript.StyleExam {
			return nil, fmt.Errorf("unknown style %q", style)
		}
	}

	titles := make(map[int]string, len(chapters))
	for _, ch := range chapters {
		titles[ch.Index] = ch.Title
	}

	var out []transcript.StyledSummary
	for _, cs := range chapterSummaries {
		for _, style := range styles {
			out = append(out, s.renderOne(ctx, cs, titles[cs.ScopeID], style))
		}
	}
	return out, nil
}

func (s *implStyler) renderOne(ctx context.Context, cs transcript.Summary, title, style string) transcript.StyledSummary {
	styled := transcript.StyledSummary{
		ChapterIndex: cs.ScopeID,
		Style:        style,
		Title:        title,
		Bullets:      s.bullets(ctx, cs.Text, style),
	}
	if style == transcript.StyleExam {
		fillExamFields(&styled, cs.Text)
	}
	return styled
}

// bullets renders the summary text as a short bullet list: via the generator
// when one is configured and it cooperates, sentence-per-bullet otherwise.
func (s *implStyler) bullets(ctx context.Context, text, style string) []string {
	if s.gen != nil {
		prompt := fmt.Sprintf(
			"Rewrite this lecture chapter summary as %s notes. Return 3 to 6 concise bullet lines, each starting with \"- \", and nothing else:\n\n%s",
			style, text)
		if resp, err := s.gen.Generate(ctx, prompt, 600); err != nil {
			s.logger.Warn(ctx, "Styler generator failed, using rule-based bullets: %v", err)
		} else if parsed := parseBullets(resp); len(parsed) > 0 {
			return parsed
		}
	}
	return sentenceBullets(text)
}

func parseBullets(resp string) []string {
	var bullets []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}

func sentenceBullets(text string) []string {
	sentences := textutil.SplitSentences(text)
	if len(sentences) > maxBullets {
		sentences = sentences[:maxBullets]
	}
	return sentences
}

// examSignal maps a content cue in the summary text to exam-prep material.
type examSignal struct {
	keywords []string
	point    string
	pattern  string
	pitfall  string
	tip      string
}

var examSignals = []examSignal{
	{
		keywords: []string{"definition", "defined", "is called", "means that", "refers to"},
		point:    "Definitions and precise statements introduced in this chapter",
		pattern:  "State the definition exactly, then apply it to a simple case",
		pitfall:  "Paraphrasing a definition and dropping a required condition",
		tip:      "Memorize definitions verbatim; conditions are part of the statement",
	},
	{
		keywords: []string{"theorem", "proof", "property", "formula", "rule", "law"},
		point:    "Main results and the conditions under which they hold",
		pattern:  "Decide whether a result applies when one hypothesis is removed",
		pitfall:  "Applying a result without checking its hypotheses",
		tip:      "List the hypotheses before invoking any result",
	},
	{
		keywords: []string{"example", "problem", "exercise", "compute", "calculate"},
		point:    "Worked examples and the techniques they demonstrate",
		pattern:  "Solve a variant of an in-lecture example with changed numbers",
		pitfall:  "Memorizing one worked answer instead of the method",
		tip:      "Redo each example from scratch without looking at the notes",
	},
	{
		keywords: []string{"important", "remember", "note that", "key", "careful"},
		point:    "Points the lecturer explicitly flagged as important",
		pattern:  "Short-answer questions targeting flagged points",
		pitfall:  "Skimming past explicit emphasis in the lecture",
		tip:      "Flagged points are disproportionately likely to be tested",
	},
}

// fillExamFields derives the exam-prep sections from the summary text alone.
// Deterministic by construction so the exam rendering is stable across runs
// and across generator availability.
func fillExamFields(styled *transcript.StyledSummary, text string) {
	lower := strings.ToLower(text)
	for _, sig := range examSignals {
		for _, kw := range sig.keywords {
			if strings.Contains(lower, kw) {
				styled.ExamPoints = append(styled.ExamPoints, sig.point)
				styled.QuestionPatterns = append(styled.QuestionPatterns, sig.pattern)
				styled.Pitfalls = append(styled.Pitfalls, sig.pitfall)
				styled.Tips = append(styled.Tips, sig.tip)
				break
			}
		}
	}
	if len(styled.ExamPoints) == 0 {
		n := len(styled.Bullets)
		if n > 2 {
			n = 2
		}
		styled.ExamPoints = append(styled.ExamPoints, styled.Bullets[:n]...)
	}
}
