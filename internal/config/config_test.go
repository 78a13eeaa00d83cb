package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "minimal valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Paths.Output = "" },
			wantErr: true,
		},
		{
			name:    "negative segmenter threshold",
			mutate:  func(c *Config) { c.Segmenter.Threshold = -1 },
			wantErr: true,
		},
		{
			name:    "negative min paragraphs",
			mutate:  func(c *Config) { c.Segmenter.MinParagraphs = -2 },
			wantErr: true,
		},
		{
			name:    "overlap not smaller than window",
			mutate:  func(c *Config) { c.Summarizer.WindowSize = 2; c.Summarizer.WindowOverlap = 2 },
			wantErr: true,
		},
		{
			name:    "negative budget",
			mutate:  func(c *Config) { c.Summarizer.ChapterBudget = -10 },
			wantErr: true,
		},
		{
			name:    "unknown analyzer mode",
			mutate:  func(c *Config) { c.Analyzer.Mode = "remote" },
			wantErr: true,
		},
		{
			name:    "llm mode without api keys",
			mutate:  func(c *Config) { c.Analyzer.Mode = "llm" },
			wantErr: true,
		},
		{
			name: "llm mode with api keys",
			mutate: func(c *Config) {
				c.Analyzer.Mode = "llm"
				c.Gemini.APIKeys = []string{"k1"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Cleaner.MaxGapMs != 1500 {
		t.Errorf("Cleaner.MaxGapMs default = %d, want 1500", cfg.Cleaner.MaxGapMs)
	}
	if cfg.Segmenter.Threshold != 1.5 {
		t.Errorf("Segmenter.Threshold default = %v, want 1.5", cfg.Segmenter.Threshold)
	}
	if cfg.Summarizer.WindowSize != 3 {
		t.Errorf("Summarizer.WindowSize default = %d, want 3", cfg.Summarizer.WindowSize)
	}
	if cfg.Analyzer.Mode != "local" {
		t.Errorf("Analyzer.Mode default = %q, want local", cfg.Analyzer.Mode)
	}
	if len(cfg.Cleaner.Fillers) == 0 {
		t.Error("Cleaner.Fillers default not applied")
	}
	if cfg.Gemini.Model == "" {
		t.Error("Gemini.Model default not applied")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

cleaner:
  max_gap_ms: 2000
  min_chars: 150

segmenter:
  min_gap_ms: 30000
  threshold: 1.0

summarizer:
  window_size: 2

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Cleaner.MaxGapMs != 2000 {
		t.Errorf("Cleaner.MaxGapMs = %d, want 2000", cfg.Cleaner.MaxGapMs)
	}
	if cfg.Segmenter.MinGapMs != 30000 {
		t.Errorf("Segmenter.MinGapMs = %d, want 30000", cfg.Segmenter.MinGapMs)
	}
	if cfg.Summarizer.WindowSize != 2 {
		t.Errorf("Summarizer.WindowSize = %d, want 2", cfg.Summarizer.WindowSize)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
