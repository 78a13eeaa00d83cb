package summarize

import (
	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/llm"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implSummarizer struct {
	cfg           config.SummarizerConfig
	gen           llm.Generator
	logger        logger.Logger
	maxConcurrent int
}

// New creates a Summarizer. gen may be nil, in which case every reduction
// uses the local extractive method directly.
func New(cfg config.SummarizerConfig, maxConcurrent int, gen llm.Generator, log logger.Logger) Summarizer {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implSummarizer{
		cfg:           cfg,
		gen:           gen,
		logger:        log,
		maxConcurrent: maxConcurrent,
	}
}
