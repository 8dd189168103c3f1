package account

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the usecase layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID   int64
	Username string
	IsAdmin  bool
}
