package models

import "gorm.io/gorm"

// User represents a registered account. Username is the primary identity and
// never changes. Presence (the live event stream, if any) is tracked by the
// in-process hub, not persisted here.
type User struct {
	gorm.Model
	Username     string `gorm:"size:32;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	AvatarURL    string `gorm:"size:512"`
}
