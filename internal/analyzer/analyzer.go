package analyzer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Analyze annotates every sentence of every paragraph. Paragraphs are
// processed concurrently; output is reassembled in paragraph order, then
// sentence order, so concurrency never changes the result.
func (a *implAnalyzer) Analyze(ctx context.Context, paragraphs []transcript.Paragraph) ([]transcript.Annotation, error) {
	perParagraph := make([][]transcript.Annotation, len(paragraphs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)
	for i, p := range paragraphs {
		g.Go(func() error {
			perParagraph[i] = a.analyzeParagraph(gctx, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze paragraphs: %w", err)
	}

	var out []transcript.Annotation
	for _, anns := range perParagraph {
		out = append(out, anns...)
	}
	return out, nil
}

func (a *implAnalyzer) analyzeParagraph(ctx context.Context, p transcript.Paragraph) []transcript.Annotation {
	sentences := textutil.SplitSentences(p.Text)
	if len(sentences) == 0 {
		return nil
	}

	if a.cfg.Mode == "llm" && a.gen != nil {
		if anns, err := a.analyzeLLM(ctx, p, sentences); err == nil {
			return anns
		} else {
			a.logger.Warn(ctx, "LLM analysis failed for paragraph %d, using local heuristics: %v", p.ParagraphID, err)
		}
	}
	return a.analyzeLocal(p, sentences)
}

const analysisPrompt = `You are analyzing a transcript of classroom teaching, one numbered sentence per line. Classify every sentence.

Return ONLY a JSON array with exactly one object per input sentence, in input order. Each object has:
  "text":  the sentence
  "label": one of "key_content", "definition", "example", "meta", "minor_content"
  "note":  a short reason, may be empty

Sentences:
%s`

type llmItem struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Note  string `json:"note"`
}

func (a *implAnalyzer) analyzeLLM(ctx context.Context, p transcript.Paragraph, sentences []string) ([]transcript.Annotation, error) {
	var sb strings.Builder
	for i, s := range sentences {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}

	resp, err := a.gen.Generate(ctx, fmt.Sprintf(analysisPrompt, sb.String()), 4096)
	if err != nil {
		return nil, err
	}

	items, err := extractJSONArray(resp)
	if err != nil {
		return nil, err
	}
	if len(items) != len(sentences) {
		return nil, fmt.Errorf("got %d items for %d sentences", len(items), len(sentences))
	}

	anns := make([]transcript.Annotation, len(sentences))
	for i, item := range items {
		label := item.Label
		if !validLabel(label) {
			label = heuristicLabel(sentences[i])
		}
		anns[i] = transcript.Annotation{
			ParagraphID:   p.ParagraphID,
			SentenceIndex: i,
			Sentence:      sentences[i],
			Label:         label,
			Note:          item.Note,
		}
	}
	return anns, nil
}

func (a *implAnalyzer) analyzeLocal(p transcript.Paragraph, sentences []string) []transcript.Annotation {
	anns := make([]transcript.Annotation, len(sentences))
	for i, s := range sentences {
		label := heuristicLabel(s)
		anns[i] = transcript.Annotation{
			ParagraphID:   p.ParagraphID,
			SentenceIndex: i,
			Sentence:      s,
			Label:         label,
			Note:          heuristicNote(label),
		}
	}
	return anns
}

func validLabel(label string) bool {
	switch label {
	case transcript.LabelKeyContent, transcript.LabelDefinition, transcript.LabelExample,
		transcript.LabelMeta, transcript.LabelMinorContent:
		return true
	}
	return false
}
