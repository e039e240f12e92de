package entities

import "time"

// SystemSenderID marks messages written by the platform itself.
const SystemSenderID = "system"

// ChatMessage is one entry of an append-only thread stored under "chat_{chatId}".
// Read only ever moves from false to true.
type ChatMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func (m ChatMessage) EntityID() string { return m.ID }
