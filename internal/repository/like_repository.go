package repository

import (
	"context"
	"database/sql"

	"github.com/antnlgr/cinelike/internal/model"
)

// LikeRepo owns the likes table, the many-to-many relation between users and
// movies. It references the other tables by id only; the unique
// (user_id, movie_id) key and the cascading foreign keys carry the
// invariants, not application-level locking.
type LikeRepo struct{ DB *sql.DB }

func NewLikeRepo(db *sql.DB) *LikeRepo { return &LikeRepo{DB: db} }

// Add resolves the imdb id and inserts a like for the user. Resolve and
// insert run inside one transaction so a movie deleted between the two
// statements rolls the whole operation back.
func (r *LikeRepo) Add(ctx context.Context, userID uint64, imdbID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var movieID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM movies WHERE imdb_id=? LIMIT 1", imdbID).Scan(&movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrMovieNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO likes (user_id, movie_id) VALUES (?,?)",
		userID, movieID); err != nil {
		if isDuplicate(err) {
			return ErrAlreadyLiked
		}
		return err
	}
	return tx.Commit()
}

// Remove deletes the like for (user, imdb id) if present. Removing a like
// that does not exist, or whose movie does not exist, is a no-op success.
func (r *LikeRepo) Remove(ctx context.Context, userID uint64, imdbID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE l FROM likes l
		 JOIN movies m ON m.id = l.movie_id
		 WHERE l.user_id = ? AND m.imdb_id = ?`,
		userID, imdbID)
	return err
}

// ListByUser joins the user's likes to the catalog, most recent like first.
func (r *LikeRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.id, m.imdb_id, m.title, m.year, m.poster, m.type, m.created_at
		 FROM likes l
		 JOIN movies m ON m.id = l.movie_id
		 WHERE l.user_id = ?
		 ORDER BY l.created_at DESC, l.id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, 8)
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
