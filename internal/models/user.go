package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	// User identifier
	// example: 1
	ID int64 `json:"id"`

	// Username
	// example: admin
	Username string `json:"username"`
}
