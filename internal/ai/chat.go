package ai

import (
	"context"
	"fmt"
	"strings"
)

// ApologyReply is returned to the user when a chat turn fails for any reason.
const ApologyReply = "Oops! I'm having a little trouble connecting. Please try again in a moment."

// ChatMode selects the assistant persona for a chat session.
type ChatMode string

const (
	ModeGeneral ChatMode = "general"
	ModeTutor   ChatMode = "tutor"
	ModeExam    ChatMode = "exam"
)

// ParseMode maps a user-supplied mode name to a ChatMode.
func ParseMode(s string) (ChatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeGeneral):
		return ModeGeneral, nil
	case string(ModeTutor):
		return ModeTutor, nil
	case string(ModeExam):
		return ModeExam, nil
	default:
		return "", fmt.Errorf("unknown chat mode %q (want general, tutor, or exam)", s)
	}
}

// ChatSession holds the conversation state for one chat. History accumulates
// across turns so the model sees the full exchange. A failed turn is not
// recorded, so the next Send retries from a clean transcript.
type ChatSession struct {
	client  Client
	mode    ChatMode
	system  string
	history []Message
}

// NewChatSession starts a chat in the given mode. If grounding is non-empty
// it is embedded in the system prompt as curriculum context.
func NewChatSession(client Client, mode ChatMode, grounding string) *ChatSession {
	return &ChatSession{
		client: client,
		mode:   mode,
		system: chatSystemPrompt(mode, grounding),
	}
}

func (s *ChatSession) Mode() ChatMode { return s.mode }

// Send submits one user message and returns the model reply. On any failure
// the error is returned alongside ApologyReply so callers can show a friendly
// message without inspecting the error.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	msgs := make([]Message, 0, len(s.history)+1)
	msgs = append(msgs, s.history...)
	msgs = append(msgs, Message{Role: "user", Text: text})

	resp, err := s.client.Generate(ctx, GenerateRequest{
		Task:         TaskChat,
		SystemPrompt: s.system,
		Messages:     msgs,
	})
	if err != nil {
		return ApologyReply, err
	}
	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return ApologyReply, fmt.Errorf("chat turn: %w: empty reply", ErrInvalidOutput)
	}

	s.history = append(s.history, Message{Role: "user", Text: text}, Message{Role: "model", Text: reply})
	return reply, nil
}
