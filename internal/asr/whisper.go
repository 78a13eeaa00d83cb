package asr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/transcript"
)

// Transcribe runs the media file through ffmpeg and whisper.cpp, then parses
// the resulting SRT into spans. Temporary audio and subtitle files are
// removed before returning.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) ([]transcript.Span, error) {
	audioPath, temp, err := t.extractAudio(ctx, mediaPath)
	if err != nil {
		return nil, err
	}
	if temp {
		defer os.Remove(audioPath)
	}

	srtPath, err := t.runWhisper(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(srtPath)

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}

	sourceID := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	spans := ParseSRT(sourceID, string(data))

	t.logger.Info(ctx, "Transcription produced %d spans: %s", len(spans), mediaPath)
	return spans, nil
}

// runWhisper invokes whisper.cpp on a 16kHz mono WAV and returns the path of
// the SRT it wrote.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Threads, audioPath)

	// -ml/-mc 0: no segment length or context cap, better for long lectures
	// -bo 5: best-of sampling for accuracy
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	t.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
