package segmenter

import (
	"fmt"
	"strings"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implSegmenter struct {
	cfg    config.SegmenterConfig
	logger logger.Logger
	cues   []string
}

// New creates a Segmenter. Invalid tuning values are rejected here, before
// any stage work begins.
func New(cfg config.SegmenterConfig, log logger.Logger) (Segmenter, error) {
	if cfg.Threshold <= 0 {
		return nil, fmt.Errorf("segmenter threshold must be positive, got %v", cfg.Threshold)
	}
	if cfg.MinParagraphs <= 0 {
		return nil, fmt.Errorf("segmenter min paragraphs must be positive, got %d", cfg.MinParagraphs)
	}
	if cfg.MinGapMs <= 0 {
		return nil, fmt.Errorf("segmenter min gap must be positive, got %d", cfg.MinGapMs)
	}

	cues := make([]string, len(cfg.CuePhrases))
	for i, c := range cfg.CuePhrases {
		cues[i] = strings.ToLower(c)
	}
	return &implSegmenter{cfg: cfg, logger: log, cues: cues}, nil
}
