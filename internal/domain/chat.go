package domain

import (
	"context"
	"time"
)

// Chat user types.
const (
	ChatUserVisitor  = "visitor"
	ChatUserAuthor   = "author"
	ChatUserReviewer = "reviewer"
)

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
	UserType  string `json:"userType" binding:"omitempty,oneof=visitor author reviewer"`
}

// ChatMessage is one exchange between a visitor and the canned-response bot.
type ChatMessage struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	UserType    string    `json:"userType"`
}

type ChatUsecase interface {
	Reply(ctx context.Context, req *ChatRequest) (*ChatMessage, error)
}
