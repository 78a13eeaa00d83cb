package asr

import (
	"strconv"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/textutil"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// ParseSRT converts SRT subtitle text into spans tagged with sourceID.
// Malformed blocks are skipped rather than failing the whole file, because
// whisper.cpp occasionally emits truncated trailing entries.
func ParseSRT(sourceID, content string) []transcript.Span {
	var spans []transcript.Span

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// First line is the sequence number; the timing line follows.
		timing := lines[1]
		textLines := lines[2:]
		if !strings.Contains(timing, "-->") {
			// Some writers omit the sequence number.
			timing = lines[0]
			textLines = lines[1:]
		}

		startMs, endMs, ok := parseTiming(timing)
		if !ok {
			continue
		}

		text := textutil.NormalizeSpace(strings.Join(textLines, " "))
		if text == "" {
			continue
		}

		spans = append(spans, transcript.Span{
			SourceID: sourceID,
			StartMs:  startMs,
			EndMs:    endMs,
			Text:     text,
		})
	}
	return spans
}

// parseTiming parses an SRT timing line like
// "00:01:02,500 --> 00:01:05,000".
func parseTiming(line string) (startMs, endMs int64, ok bool) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, false
	}
	startMs, ok = parseTimestamp(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	endMs, ok = parseTimestamp(strings.TrimSpace(parts[1]))
	if !ok || endMs < startMs {
		return 0, 0, false
	}
	return startMs, endMs, true
}

// parseTimestamp parses "HH:MM:SS,mmm" (or with a dot) into milliseconds.
func parseTimestamp(ts string) (int64, bool) {
	ts = strings.ReplaceAll(ts, ".", ",")
	main, milli, found := strings.Cut(ts, ",")
	if !found {
		return 0, false
	}

	fields := strings.Split(main, ":")
	if len(fields) != 3 {
		return 0, false
	}

	h, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	s, err3 := strconv.Atoi(fields[2])
	ms, err4 := strconv.Atoi(milli)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, false
	}
	if h < 0 || m < 0 || m > 59 || s < 0 || s > 59 || ms < 0 || ms > 999 {
		return 0, false
	}

	return int64(h)*3600000 + int64(m)*60000 + int64(s)*1000 + int64(ms), true
}
