package repository

import (
	"context"
	"database/sql"

	"github.com/antnlgr/cinelike/internal/model"
)

// MovieRepo owns the movies table. The catalog is written exactly once, by
// the startup seed; everything else is reads.
type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// SeedIfEmpty bulk-inserts the given movies when the table holds no rows and
// returns how many were inserted. INSERT IGNORE keyed on the unique imdb_id
// makes a re-run a no-op rather than an update.
func (r *MovieRepo) SeedIfEmpty(ctx context.Context, movies []model.Movie) (int, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 || len(movies) == 0 {
		return 0, nil
	}

	query := "INSERT IGNORE INTO movies (imdb_id, title, year, poster, type) VALUES "
	args := make([]interface{}, 0, len(movies)*5)
	for i, m := range movies {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, m.ImdbID, m.Title, m.Year, m.Poster, m.Type)
	}
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ListAll returns the whole catalog ordered by internal id ascending.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, imdb_id, title, year, poster, type, created_at FROM movies ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, 16)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.ImdbID, &m.Title, &m.Year, &m.Poster, &m.Type, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
