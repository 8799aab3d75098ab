package models

// Event types published after a state change commits to the request.
const (
	EventUserRegistered        = "user.registered"
	EventUserDeleted           = "user.deleted"
	EventSavedBookAdded        = "savedbook.added"
	EventSavedBookStatusChange = "savedbook.status_changed"
	EventSavedBookDeleted      = "savedbook.deleted"
	EventReviewAdded           = "review.added"
	EventReviewUpdated         = "review.updated"
	EventReviewDeleted         = "review.deleted"
	EventRatingAdded           = "rating.added"
	EventRatingUpdated         = "rating.updated"
	EventRatingDeleted         = "rating.deleted"
)

// Event describes a change to a user's shelf.
type Event struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	Username  string `json:"username"`            // Username is the owner whose shelf changed.
	VolumeID  string `json:"volume_id,omitempty"` // VolumeID is the affected volume, when there is one.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix time (seconds) of the change.
}
