package analyzer

import (
	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/llm"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implAnalyzer struct {
	cfg           config.AnalyzerConfig
	gen           llm.Generator
	logger        logger.Logger
	maxConcurrent int
}

// New creates an Analyzer. In "llm" mode gen must be non-nil; in "local" mode
// it is ignored.
func New(cfg config.AnalyzerConfig, maxConcurrent int, gen llm.Generator, log logger.Logger) Analyzer {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implAnalyzer{
		cfg:           cfg,
		gen:           gen,
		logger:        log,
		maxConcurrent: maxConcurrent,
	}
}
