package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    ChatMode
		wantErr bool
	}{
		{"", ModeGeneral, false},
		{"general", ModeGeneral, false},
		{"Tutor", ModeTutor, false},
		{"EXAM", ModeExam, false},
		{"quiz", "", true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestChatSession_Send_KeepsHistory(t *testing.T) {
	client := &stubClient{text: "Hello there! 🎮"}
	session := NewChatSession(client, ModeGeneral, "")

	reply, err := session.Send(context.Background(), "hi sparky")
	require.NoError(t, err)
	assert.Equal(t, "Hello there! 🎮", reply)

	_, err = session.Send(context.Background(), "tell me more")
	require.NoError(t, err)

	// Second call carries both prior turns plus the new message.
	require.Len(t, client.last.Messages, 3)
	assert.Equal(t, "hi sparky", client.last.Messages[0].Text)
	assert.Equal(t, "Hello there! 🎮", client.last.Messages[1].Text)
	assert.Equal(t, "model", client.last.Messages[1].Role)
	assert.Equal(t, "tell me more", client.last.Messages[2].Text)
}

func TestChatSession_Send_FailureReturnsApology(t *testing.T) {
	client := &stubClient{err: ErrUnavailable}
	session := NewChatSession(client, ModeGeneral, "")

	reply, err := session.Send(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, ApologyReply, reply)
}

func TestChatSession_Send_FailedTurnNotRecorded(t *testing.T) {
	client := &stubClient{err: ErrUnavailable}
	session := NewChatSession(client, ModeGeneral, "")

	_, _ = session.Send(context.Background(), "hi")

	client.err = nil
	client.text = "welcome back"
	_, err := session.Send(context.Background(), "hi again")

	require.NoError(t, err)
	require.Len(t, client.last.Messages, 1)
	assert.Equal(t, "hi again", client.last.Messages[0].Text)
}

func TestChatSession_ModePrompts(t *testing.T) {
	client := &stubClient{text: "ok"}

	tutor := NewChatSession(client, ModeTutor, "")
	_, err := tutor.Send(context.Background(), "help with math")
	require.NoError(t, err)
	assert.Contains(t, client.last.SystemPrompt, "Homework Tutor")

	exam := NewChatSession(client, ModeExam, "")
	_, err = exam.Send(context.Background(), "quiz me")
	require.NoError(t, err)
	assert.Contains(t, client.last.SystemPrompt, "Exam Prep Coach")
}

func TestChatSession_CurriculumGrounding(t *testing.T) {
	client := &stubClient{text: "ok"}
	session := NewChatSession(client, ModeTutor, "Chapter 3: Fractions")

	_, err := session.Send(context.Background(), "what are fractions?")

	require.NoError(t, err)
	assert.Contains(t, client.last.SystemPrompt, "CURRICULUM START")
	assert.Contains(t, client.last.SystemPrompt, "Chapter 3: Fractions")
}

func TestChatSession_EmptyReplyIsError(t *testing.T) {
	client := &stubClient{text: "   "}
	session := NewChatSession(client, ModeGeneral, "")

	reply, err := session.Send(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Equal(t, ApologyReply, reply)
}
