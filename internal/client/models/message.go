package models

import "time"

// Message is a direct message between two users. Messages are immutable
// once created; there is no edit or delete. Timestamps are RFC3339 on the
// wire.
type Message struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// InConversation reports whether the message belongs to the conversation
// between the two given users, in either direction.
func (m Message) InConversation(userA, userB string) bool {
	return (m.FromUserID == userA && m.ToUserID == userB) ||
		(m.FromUserID == userB && m.ToUserID == userA)
}
