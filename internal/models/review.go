package models

import "time"

// Review is the single review a user may write for a saved volume.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	VolumeID  string    `json:"volume_id" db:"volume_id"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// VolumeReview is a review annotated with its author's username, as listed
// publicly for a volume.
type VolumeReview struct {
	Review
	Username string `json:"username" db:"username"`
}
