package model

import "time"

// User represents an application user record as stored in the `users`
// table. PasswordHash never leaves the server; handlers expose the
// PublicUser projection instead.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique username, immutable after signup.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}

// PublicUser is the subset of User fields safe to return to clients.
type PublicUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// Public returns the client-safe projection of u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
