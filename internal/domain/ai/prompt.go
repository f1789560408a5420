package ai

import (
	"fmt"
	"strings"
)

// Message roles in a chat transcript
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// Message is a single turn in a chat transcript. Messages are not
// persisted; they travel in the request payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FlattenTranscript renders a chat transcript as a single prompt with a
// trailing "AI:" cue for the model to complete.
func FlattenTranscript(messages []Message) string {
	lines := make([]string, len(messages))
	for i, msg := range messages {
		speaker := "AI"
		if msg.Role == RoleUser {
			speaker = "User"
		}
		lines[i] = fmt.Sprintf("%s: %s", speaker, msg.Content)
	}
	return strings.Join(lines, "\n") + "\nAI:"
}

// BuildGeneratePrompt combines background context and a task instruction
// into a single generation prompt.
func BuildGeneratePrompt(context, prompt string) string {
	return fmt.Sprintf("Context: %s\n\nTask: %s", context, prompt)
}
