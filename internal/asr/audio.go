package asr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// audioExtensions lists formats whisper.cpp cannot read directly; anything
// else goes through ffmpeg first.
var audioExtensions = map[string]bool{
	".wav": true,
}

// extractAudio converts a media file to 16kHz mono WAV, the input format
// whisper.cpp expects. WAV inputs are passed through untouched.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath string) (string, bool, error) {
	if audioExtensions[strings.ToLower(filepath.Ext(mediaPath))] {
		return mediaPath, false, nil
	}

	audioPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "_temp.wav"

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// -vn: drop video
	// -ar 16000 -ac 1: 16kHz mono, what whisper.cpp wants
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", false, fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, true, nil
}
