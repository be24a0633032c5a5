package repository

import (
	"context"
	"database/sql"

	"github.com/antnlgr/cinelike/internal/model"
	"github.com/antnlgr/cinelike/internal/utils"
)

// UserRepo owns the users table: account creation and credential checks.
// Password hashes never leave this package; both methods return the public
// projection only.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a new user, returning its public
// projection. A taken username yields ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, username, password string, cost int) (model.PublicUser, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.PublicUser{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		if isDuplicate(err) {
			return model.PublicUser{}, ErrUsernameExists
		}
		return model.PublicUser{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.PublicUser{}, err
	}
	return model.PublicUser{ID: uint64(id), Username: username}, nil
}

// VerifyCredentials checks a username/password pair against the stored hash
// using bcrypt's comparison routine. Unknown username and wrong password both
// come back as ErrInvalidCredentials.
func (r *UserRepo) VerifyCredentials(ctx context.Context, username, password string) (model.PublicUser, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.PublicUser{}, ErrInvalidCredentials
		}
		return model.PublicUser{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.PublicUser{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}
