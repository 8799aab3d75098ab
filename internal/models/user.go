package models

// UserDB represents a user record in the database
type UserDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username, the identity carried in tokens
	Password string `json:"-" db:"password"`        // bcrypt hash
	Email    string `json:"email" db:"email"`       // User email
}

// UserProfile is what an owner sees about their own account.
type UserProfile struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	VolumeIDs []string `json:"volume_ids"` // saved volumes in insertion order
}

// Identity is the caller derived from a verified token.
type Identity struct {
	Username string
}
