package models

import "time"

// Message is one chat message between two users. Rows are insert-only; the
// auto-increment ID is the conversation order.
type Message struct {
	ID        uint   `gorm:"primaryKey"`
	Sender    string `gorm:"size:32;not null;index"`
	Receiver  string `gorm:"size:32;not null;index"`
	Body      string `gorm:"not null"`
	CreatedAt time.Time
}
