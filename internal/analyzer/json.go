package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSONArray pulls a JSON array out of a model response that may be
// wrapped in code fences or prose. It tries the cleaned text first, then the
// outermost bracketed slice.
func extractJSONArray(resp string) ([]llmItem, error) {
	text := strings.TrimSpace(resp)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var items []llmItem
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &items); err == nil {
			return items, nil
		}
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &items); err == nil {
			return items, nil
		}
	}
	return nil, fmt.Errorf("no JSON array in response")
}
