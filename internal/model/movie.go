package model

import "time"

// Movie mirrors the 'movies' table. The catalog is seeded once from a static
// data set and read-only afterwards; ImdbID is the stable external key.
type Movie struct {
	ID        uint64
	ImdbID    string
	Title     string
	Year      string
	Poster    string
	Type      string
	CreatedAt time.Time
}

// MovieProjection is the shape exposed over the API. Field names follow the
// OMDb convention the front-end already consumes.
type MovieProjection struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	Type   string `json:"Type"`
}

// Projection returns the client-facing view of m.
func (m Movie) Projection() MovieProjection {
	return MovieProjection{
		ImdbID: m.ImdbID,
		Title:  m.Title,
		Year:   m.Year,
		Poster: m.Poster,
		Type:   m.Type,
	}
}
