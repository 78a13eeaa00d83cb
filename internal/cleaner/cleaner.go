package cleaner

import (
	"context"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// piece is one span's contribution to the paragraph being assembled.
type piece struct {
	spanID  int
	source  string
	startMs int64
	endMs   int64
	text    string
}

// Clean walks spans in time order and merges runs of consecutive spans into
// paragraphs. Boundary decisions run on lightly-normalized text only; filler
// removal and full normalization happen per paragraph after boundaries are
// fixed, so filtering never perturbs where paragraphs break.
func (c *implCleaner) Clean(ctx context.Context, spans []transcript.Span) ([]transcript.Paragraph, error) {
	var paragraphs []transcript.Paragraph
	var cur []piece
	curChars := 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		if p, ok := c.buildParagraph(cur); ok {
			paragraphs = append(paragraphs, p)
		}
		cur = nil
		curChars = 0
	}

	for i, span := range spans {
		if !span.Valid() {
			c.logger.Warn(ctx, "Skipping span %d: invalid timestamps [%d, %d]", i, span.StartMs, span.EndMs)
			continue
		}
		text := textutil.NormalizeSpace(span.Text)
		if text == "" {
			// Never let an empty span anchor or extend a paragraph.
			continue
		}

		// A single over-long span becomes its own paragraph run, split at
		// sentence boundaries.
		if span.EndMs-span.StartMs > c.cfg.MaxParagraphMs {
			flush()
			for _, part := range splitLongSpan(i, span.StartMs, span.EndMs, text, c.cfg.MaxParagraphMs) {
				part.source = span.SourceID
				if p, ok := c.buildParagraph([]piece{part}); ok {
					paragraphs = append(paragraphs, p)
				}
			}
			continue
		}

		if len(cur) > 0 && span.StartMs-cur[len(cur)-1].endMs > c.cfg.MaxGapMs {
			flush()
		}

		cur = append(cur, piece{spanID: i, source: span.SourceID, startMs: span.StartMs, endMs: span.EndMs, text: text})
		curChars += len([]rune(text))

		if curChars >= c.cfg.MinChars && textutil.EndsWithSentencePunct(text) {
			flush()
		}
	}
	flush()

	for id := range paragraphs {
		paragraphs[id].ParagraphID = id
	}
	return paragraphs, nil
}

// buildParagraph finalizes one merged run. Returns false when normalization
// leaves no text worth keeping.
func (c *implCleaner) buildParagraph(pieces []piece) (transcript.Paragraph, bool) {
	var raw string
	spanIDs := make([]int, 0, len(pieces))
	for _, pc := range pieces {
		if raw != "" {
			raw += " "
		}
		raw += pc.text
		if len(spanIDs) == 0 || spanIDs[len(spanIDs)-1] != pc.spanID {
			spanIDs = append(spanIDs, pc.spanID)
		}
	}

	text := c.finalizeText(raw)
	if text == "" {
		return transcript.Paragraph{}, false
	}
	return transcript.Paragraph{
		SourceID: pieces[0].source,
		StartMs:  pieces[0].startMs,
		EndMs:    pieces[len(pieces)-1].endMs,
		Text:     text,
		SpanIDs:  spanIDs,
	}, true
}

// splitLongSpan cuts one over-long span into pieces at sentence boundaries,
// interpolating timestamps proportionally to character counts.
func splitLongSpan(spanID int, startMs, endMs int64, text string, maxMs int64) []piece {
	sentences := textutil.SplitSentences(text)
	if len(sentences) < 2 {
		return []piece{{spanID: spanID, startMs: startMs, endMs: endMs, text: text}}
	}

	duration := endMs - startMs
	chunks := int((duration + maxMs - 1) / maxMs)
	if chunks > len(sentences) {
		chunks = len(sentences)
	}

	total := 0
	for _, s := range sentences {
		total += len([]rune(s))
	}
	budget := (total + chunks - 1) / chunks

	var out []piece
	var buf string
	bufChars := 0
	consumed := 0
	cursor := startMs
	for _, s := range sentences {
		if buf != "" {
			buf += " "
		}
		buf += s
		n := len([]rune(s))
		bufChars += n
		consumed += n
		if bufChars >= budget {
			end := startMs + duration*int64(consumed)/int64(total)
			out = append(out, piece{spanID: spanID, startMs: cursor, endMs: end, text: buf})
			cursor = end
			buf = ""
			bufChars = 0
		}
	}
	if buf != "" {
		out = append(out, piece{spanID: spanID, startMs: cursor, endMs: endMs, text: buf})
	}
	return out
}
