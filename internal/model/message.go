package model

import (
	"time"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Kind is the message content kind. Only text exists today.
type Kind string

const (
	KindText Kind = "text"
)

// Message is a single entry in a chat session transcript. Messages are
// immutable once created and live only for the lifetime of the session.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitMessageRequest is the request to submit user text to a session.
type SubmitMessageRequest struct {
	Text        string `json:"text"`
	CurrentPage string `json:"current_page,omitempty"`
}

// SubmitMessageResponse carries the appended user message and the
// assistant's reply.
type SubmitMessageResponse struct {
	UserMessage      Message `json:"user_message"`
	AssistantMessage Message `json:"assistant_message"`
	Unread           int     `json:"unread"`
}
