package ai

import (
	"regexp"
	"strings"
)

// Finish reasons reported by the upstream generation API
const (
	FinishReasonComplete  = "COMPLETE"
	FinishReasonMaxTokens = "MAX_TOKENS"
)

// Disclaimer suffixes appended to truncated responses
const (
	ChatTruncationNotice     = "... (Response truncated due to token limit)"
	GenerateTruncationNotice = "... Limit reached. The response has been truncated due to the maximum token limit."
)

// Heuristics for providers that omit a finish reason. A reply that stops
// mid-word or on trailing whitespace was most likely cut off by the token
// limit. Endings like "noon." are complete sentences and must not match.
var truncationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\w+$`),
	regexp.MustCompile(`[\s\n]$`),
}

// Completion is the upstream API's answer to a generation request
type Completion struct {
	Text         string
	FinishReason string
}

// Truncated reports whether the completion was cut off by the token limit.
// The upstream finish reason is authoritative when present; the pattern
// heuristics only apply when the provider omitted it.
func (c *Completion) Truncated() bool {
	if c.FinishReason != "" {
		return c.FinishReason == FinishReasonMaxTokens
	}

	text := c.Text
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, pattern := range truncationPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Result returns the trimmed completion text, with the given notice
// appended when the completion was truncated.
func (c *Completion) Result(truncationNotice string) string {
	text := strings.TrimSpace(c.Text)
	if c.Truncated() {
		return text + truncationNotice
	}
	return text
}
