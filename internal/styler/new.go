package styler

import (
	"github.com/hoanglm42/lecture-notes/internal/llm"
	"github.com/hoanglm42/lecture-notes/internal/logger"
)

type implStyler struct {
	gen    llm.Generator
	logger logger.Logger
}

// New creates a Styler. gen may be nil; bullet rendering then uses the
// deterministic rule-based formatter only.
func New(gen llm.Generator, log logger.Logger) Styler {
	return &implStyler{gen: gen, logger: log}
}
