package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Cleaner     CleanerConfig     `yaml:"cleaner"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Analyzer    AnalyzerConfig    `yaml:"analyzer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type CleanerConfig struct {
	MaxGapMs       int64    `yaml:"max_gap_ms"`
	MinChars       int      `yaml:"min_chars"`
	MaxParagraphMs int64    `yaml:"max_paragraph_ms"`
	Fillers        []string `yaml:"fillers"`
}

type SegmenterConfig struct {
	MinGapMs      int64    `yaml:"min_gap_ms"`
	MinParagraphs int      `yaml:"min_paragraphs"`
	Threshold     float64  `yaml:"threshold"`
	CuePhrases    []string `yaml:"cue_phrases"`
}

type SummarizerConfig struct {
	WindowSize      int `yaml:"window_size"`
	WindowOverlap   int `yaml:"window_overlap"`
	MicroBudget     int `yaml:"micro_budget_chars"`
	ChapterBudget   int `yaml:"chapter_budget_chars"`
	GlobalBudget    int `yaml:"global_budget_chars"`
	ReductionPasses int `yaml:"reduction_passes"`
}

type AnalyzerConfig struct {
	Mode string `yaml:"mode"` // "llm" or "local"
}

type GeminiConfig struct {
	Model      string   `yaml:"model"`
	APIKeys    []string `yaml:"api_keys"`
	TimeoutSec int      `yaml:"timeout_sec"`
	MaxRetries int      `yaml:"max_retries"`
}

// Load reads and validates the YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultFillers are dropped from paragraph text during normalization.
var DefaultFillers = []string{
	"um", "uh", "er", "ah", "hmm",
	"you know", "i mean", "sort of", "kind of", "basically",
}

// DefaultCuePhrases mark likely chapter openings when found near the start of
// a paragraph.
var DefaultCuePhrases = []string{
	"next we", "now let's", "let's move on", "moving on",
	"the next topic", "in this section", "in this chapter",
	"to summarize", "to sum up", "in conclusion",
	"first of all", "finally",
}

// Validate fails fast on invalid tuning values and fills in defaults for
// anything left unset. A zero value means "use the default"; a negative
// threshold or budget is always a configuration error.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive")
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive")
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}

	if c.Cleaner.MaxGapMs < 0 {
		return fmt.Errorf("cleaner.max_gap_ms must be positive")
	}
	if c.Cleaner.MaxGapMs == 0 {
		c.Cleaner.MaxGapMs = 1500
	}
	if c.Cleaner.MinChars < 0 {
		return fmt.Errorf("cleaner.min_chars must be positive")
	}
	if c.Cleaner.MinChars == 0 {
		c.Cleaner.MinChars = 200
	}
	if c.Cleaner.MaxParagraphMs < 0 {
		return fmt.Errorf("cleaner.max_paragraph_ms must be positive")
	}
	if c.Cleaner.MaxParagraphMs == 0 {
		c.Cleaner.MaxParagraphMs = 120_000
	}
	if len(c.Cleaner.Fillers) == 0 {
		c.Cleaner.Fillers = DefaultFillers
	}

	if c.Segmenter.MinGapMs < 0 {
		return fmt.Errorf("segmenter.min_gap_ms must be positive")
	}
	if c.Segmenter.MinGapMs == 0 {
		c.Segmenter.MinGapMs = 10_000
	}
	if c.Segmenter.MinParagraphs < 0 {
		return fmt.Errorf("segmenter.min_paragraphs must be positive")
	}
	if c.Segmenter.MinParagraphs == 0 {
		c.Segmenter.MinParagraphs = 1
	}
	if c.Segmenter.Threshold < 0 {
		return fmt.Errorf("segmenter.threshold must be positive")
	}
	if c.Segmenter.Threshold == 0 {
		c.Segmenter.Threshold = 1.5
	}
	if len(c.Segmenter.CuePhrases) == 0 {
		c.Segmenter.CuePhrases = DefaultCuePhrases
	}

	if c.Summarizer.WindowSize < 0 {
		return fmt.Errorf("summarizer.window_size must be positive")
	}
	if c.Summarizer.WindowSize == 0 {
		c.Summarizer.WindowSize = 3
	}
	if c.Summarizer.WindowOverlap < 0 {
		return fmt.Errorf("summarizer.window_overlap must not be negative")
	}
	if c.Summarizer.WindowOverlap >= c.Summarizer.WindowSize {
		return fmt.Errorf("summarizer.window_overlap must be smaller than window_size")
	}
	if c.Summarizer.MicroBudget < 0 || c.Summarizer.ChapterBudget < 0 || c.Summarizer.GlobalBudget < 0 {
		return fmt.Errorf("summarizer budgets must be positive")
	}
	if c.Summarizer.MicroBudget == 0 {
		c.Summarizer.MicroBudget = 160
	}
	if c.Summarizer.ChapterBudget == 0 {
		c.Summarizer.ChapterBudget = 400
	}
	if c.Summarizer.GlobalBudget == 0 {
		c.Summarizer.GlobalBudget = 600
	}
	if c.Summarizer.ReductionPasses < 0 {
		return fmt.Errorf("summarizer.reduction_passes must be positive")
	}
	if c.Summarizer.ReductionPasses == 0 {
		c.Summarizer.ReductionPasses = 3
	}

	switch c.Analyzer.Mode {
	case "":
		c.Analyzer.Mode = "local"
	case "llm", "local":
	default:
		return fmt.Errorf("analyzer.mode must be \"llm\" or \"local\", got %q", c.Analyzer.Mode)
	}
	if c.Analyzer.Mode == "llm" && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("analyzer.mode is \"llm\" but gemini.api_keys is empty")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSec < 0 {
		return fmt.Errorf("gemini.timeout_sec must be positive")
	}
	if c.Gemini.TimeoutSec == 0 {
		c.Gemini.TimeoutSec = 60
	}
	if c.Gemini.MaxRetries < 0 {
		return fmt.Errorf("gemini.max_retries must be positive")
	}
	if c.Gemini.MaxRetries == 0 {
		c.Gemini.MaxRetries = 3
	}

	return nil
}
