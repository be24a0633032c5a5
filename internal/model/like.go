package model

import "time"

// Like mirrors the 'likes' table. The (UserID, MovieID) pair is unique; the
// database enforces at-most-one like per user and movie and cascades deletes
// from either side.
type Like struct {
	ID        uint64
	UserID    uint64
	MovieID   uint64
	CreatedAt time.Time
}
