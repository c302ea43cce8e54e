package models

import "time"

// Friendship links an unordered pair of users. The primary key is the
// canonical pair id "requester_target" (see internal/pairid), which doubles
// as the conversation address clients use on the wire. Rows are created on
// add-friend and never updated or deleted; there is no pending state,
// adding is immediate and mutual.
type Friendship struct {
	ID        string `gorm:"size:65;primaryKey"`
	CreatedAt time.Time
}
