package llm

import "strings"

// Generator is a single-turn text generation call. Implementations do not
// retry; callers decide how to degrade on failure.
type Generator interface {
	Generate(prompt string) (string, error)
	ModelName() string
}

func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
