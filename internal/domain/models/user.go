package models

// User mirrors rows of the users table. The booking core only references
// users; the auth boundary owns them.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
