// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by LikeActivityEvent.
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// LikeActivityEvent is published whenever a user likes or unlikes a movie.
// It contains enough information for downstream consumers to log or feed
// analytics without querying the primary database.
type LikeActivityEvent struct {
	UserID     uint64 `json:"user_id"`
	ImdbID     string `json:"imdb_id"`
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"`
}
