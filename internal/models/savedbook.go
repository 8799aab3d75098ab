package models

import "time"

// Shelf names used in routes for the two read states.
const (
	ShelfRead = "read"
	ShelfWish = "wish"
)

// SavedBook is one user's copy of a catalog volume.
// (UserID, VolumeID) is unique.
type SavedBook struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	VolumeID    string    `json:"volume_id" db:"volume_id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Publisher   string    `json:"publisher" db:"publisher"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	HasRead     bool      `json:"has_read" db:"has_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// VolumeMeta is the catalog metadata supplied when saving a book.
type VolumeMeta struct {
	VolumeID    string
	Title       string
	Author      string
	Publisher   string
	Category    string
	Description string
	Image       string
	HasRead     bool
}

// SavedBookDetails is the aggregate: a saved book plus its review and rating.
// Review and Rating are nil when absent and are always serialized as null,
// never omitted.
type SavedBookDetails struct {
	SavedBook
	Review *Review `json:"review"`
	Rating *Rating `json:"rating"`
}
