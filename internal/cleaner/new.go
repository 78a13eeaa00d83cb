package cleaner

import (
	"regexp"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implCleaner struct {
	cfg     config.CleanerConfig
	logger  logger.Logger
	fillers []*regexp.Regexp
}

// New creates a Cleaner. Filler words are compiled once up front so per-span
// work stays cheap.
func New(cfg config.CleanerConfig, log logger.Logger) Cleaner {
	c := &implCleaner{cfg: cfg, logger: log}
	for _, f := range cfg.Fillers {
		c.fillers = append(c.fillers, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(f)+`\b`))
	}
	return c
}
