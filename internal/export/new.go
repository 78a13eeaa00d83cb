package export

import (
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implExporter struct {
	logger logger.Logger
}

// New creates a DOCX exporter.
func New(log logger.Logger) Exporter {
	return &implExporter{logger: log}
}
