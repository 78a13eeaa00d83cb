package asr

import (
	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
	"github.com/hoanglm42/lecture-notes/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by ffmpeg and whisper.cpp.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
