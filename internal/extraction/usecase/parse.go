package usecase

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// extractJSONObject locates the first top-level JSON object inside raw model
// output that may be wrapped in prose or markdown code fences. It returns the
// candidate substring (first '{' to last '}'), or "" when no object is found.
// The caller is responsible for strict decoding; this function only answers
// "where is the JSON".
func extractJSONObject(text string) string {
	// Prefer the content of a ```json ... ``` block when present.
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		text = matches[1]
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(text, "}")
	if end <= start {
		return ""
	}

	return strings.TrimSpace(text[start : end+1])
}
