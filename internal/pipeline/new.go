package pipeline

import (
	"fmt"

	"github.com/hoanglm42/lecture-notes/internal/analyzer"
	"github.com/hoanglm42/lecture-notes/internal/asr"
	"github.com/hoanglm42/lecture-notes/internal/cleaner"
	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/export"
	"github.com/hoanglm42/lecture-notes/internal/llm"
	"github.com/hoanglm42/lecture-notes/internal/logger"
	"github.com/hoanglm42/lecture-notes/internal/segmenter"
	"github.com/hoanglm42/lecture-notes/internal/styler"
	"github.com/hoanglm42/lecture-notes/internal/summarize"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
	"github.com/hoanglm42/lecture-notes/pkg/executor"
)

type implPipeline struct {
	cfg        *config.Config
	store      *transcript.Store
	transcribe asr.Transcriber
	cleaner    cleaner.Cleaner
	segmenter  segmenter.Segmenter
	summarizer summarize.Summarizer
	styler     styler.Styler
	analyzer   analyzer.Analyzer
	exporter   export.Exporter
	logger     logger.Logger
}

// New wires every stage from the configuration. Without Gemini API keys the
// pipeline still works: summaries fall back to extractive reduction and the
// analyzer to local heuristics.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Pipeline, error) {
	store, err := transcript.NewStore(cfg.Paths.Output)
	if err != nil {
		return nil, err
	}

	var gen llm.Generator
	if len(cfg.Gemini.APIKeys) > 0 {
		gen, err = llm.NewGemini(cfg.Gemini, log)
		if err != nil {
			return nil, fmt.Errorf("init generator: %w", err)
		}
	}

	seg, err := segmenter.New(cfg.Segmenter, log)
	if err != nil {
		return nil, fmt.Errorf("init segmenter: %w", err)
	}

	return &implPipeline{
		cfg:        cfg,
		store:      store,
		transcribe: asr.New(cfg.Whisper, exec, log),
		cleaner:    cleaner.New(cfg.Cleaner, log),
		segmenter:  seg,
		summarizer: summarize.New(cfg.Summarizer, cfg.Performance.MaxConcurrent, gen, log),
		styler:     styler.New(gen, log),
		analyzer:   analyzer.New(cfg.Analyzer, cfg.Performance.MaxConcurrent, gen, log),
		exporter:   export.New(log),
		logger:     log,
	}, nil
}

// Store exposes the run store, for opening existing runs by id.
func (p *implPipeline) Store() *transcript.Store {
	return p.store
}
