package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// A migration is one forward-only schema step. Steps are applied in version
// order and recorded in schema_migrations; already-applied steps are skipped,
// so Migrate is safe to run on every startup.
type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations lists every schema step in order. Never edit or reorder an
// applied step; append a new version instead.
var migrations = []migration{
	{
		version: 1,
		name:    "create users",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				username VARCHAR(64) NOT NULL,
				password_hash VARCHAR(100) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_users_username (username)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		},
	},
	{
		version: 2,
		name:    "create movies",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS movies (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				imdb_id VARCHAR(16) NOT NULL,
				title VARCHAR(255) NOT NULL,
				year VARCHAR(16) NOT NULL DEFAULT '',
				poster VARCHAR(512) NOT NULL DEFAULT '',
				type VARCHAR(32) NOT NULL DEFAULT 'movie',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_movies_imdb_id (imdb_id)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		},
	},
	{
		version: 3,
		name:    "create likes",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS likes (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				user_id BIGINT UNSIGNED NOT NULL,
				movie_id BIGINT UNSIGNED NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE KEY uq_likes_user_movie (user_id, movie_id),
				CONSTRAINT fk_likes_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
				CONSTRAINT fk_likes_movie FOREIGN KEY (movie_id) REFERENCES movies (id) ON DELETE CASCADE
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		},
	},
}

// Migrate brings the schema up to the latest version. MySQL DDL commits
// implicitly, so each step is executed statement by statement and recorded
// once all of its statements succeed.
func Migrate(ctx context.Context, db *sql.DB) error {
	const table = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`
	if _, err := db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		for _, stmt := range m.stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
			}
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			m.version, m.name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		log.Printf("database: applied migration %d (%s)", m.version, m.name)
	}
	return nil
}
