package model

import "time"

// User is a try-on account, keyed by email. Rows are immutable once created.
type User struct {
	ID        uint      `json:"userId" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255;not null;default:''"`
	CreatedAt time.Time `json:"createdAt"`
}
