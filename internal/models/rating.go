package models

import "time"

// Bounds for a rating value, enforced both by request validation and by a
// CHECK constraint in storage.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is the single numeric rating a user may give a saved volume.
type Rating struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	VolumeID  string    `json:"volume_id" db:"volume_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
