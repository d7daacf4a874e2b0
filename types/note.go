package types

import (
	"time"
)

// Note is a single user-authored text record. There is no UpdatedAt or
// DeletedAt: an edit overwrites CreatedAt and deletes are permanent.
type Note struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
