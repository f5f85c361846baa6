package model

import "time"

// Outfit is one saved try-on result. Every outfit belongs to exactly one user
// and is never mutated after insert.
type Outfit struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"-" gorm:"not null;index"`
	OriginalPhotoURL string    `json:"originalPhotoUrl" gorm:"not null"`
	ResultPhotoURL   string    `json:"resultPhotoUrl" gorm:"not null"`
	ClothingItemID   *string   `json:"clothingItemId" gorm:"size:255"`
	ClothingName     *string   `json:"clothingName" gorm:"size:255"`
	CreatedAt        time.Time `json:"createdAt"`
}
