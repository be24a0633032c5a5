package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antnlgr/cinelike/internal/config"
	"github.com/antnlgr/cinelike/internal/repository"
)

// sqlmockDuplicateErr mimics the MySQL duplicate-key error shape the stores
// classify on.
func sqlmockDuplicateErr() error {
	return errors.New("Error 1062 (23000): Duplicate entry for unique key")
}

func newLikeHandler(t *testing.T) (*LikeHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// QueueEnabled off so tests never try to reach a broker.
	cfg := config.Config{QueueEnabled: false}
	return NewLikeHandler(cfg, repository.NewLikeRepo(db)), mock
}

func TestAddLikeSuccess(t *testing.T) {
	h, mock := newLikeHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM movies").
		WithArgs("tt0111161").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	c, rec := postJSON("/api/likes", `{"userId":1,"imdbId":"tt0111161"}`)
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLikeTwiceReportsAlreadyLiked(t *testing.T) {
	h, mock := newLikeHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM movies").
		WithArgs("tt0111161").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO likes").
		WithArgs(uint64(1), uint64(7)).
		WillReturnError(sqlmockDuplicateErr())
	mock.ExpectRollback()

	c, rec := postJSON("/api/likes", `{"userId":1,"imdbId":"tt0111161"}`)
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Film déjà liké"}`, rec.Body.String())
}

func TestAddLikeUnknownMovie(t *testing.T) {
	h, mock := newLikeHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM movies").
		WithArgs("tt9999999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	c, rec := postJSON("/api/likes", `{"userId":1,"imdbId":"tt9999999"}`)
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Film introuvable"}`, rec.Body.String())
}

func TestAddLikeMissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"userId":1}`, `{"imdbId":"tt0111161"}`, `{"userId":0,"imdbId":"tt0111161"}`} {
		h, mock := newLikeHandler(t)
		c, rec := postJSON("/api/likes", body)
		require.NoError(t, h.Add(c))

		assert.Equal(t, http.StatusOK, rec.Code, body)
		assert.JSONEq(t, `{"success":false,"message":"Champs requis manquants"}`, rec.Body.String(), body)
		require.NoError(t, mock.ExpectationsWereMet(), body)
	}
}

func deleteLike(userID, imdbID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/likes/"+userID+"/"+imdbID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId", "imdbId")
	c.SetParamValues(userID, imdbID)
	return c, rec
}

func TestRemoveLikeIsIdempotent(t *testing.T) {
	h, mock := newLikeHandler(t)
	mock.ExpectExec("DELETE l FROM likes l").
		WithArgs(uint64(1), "tt0111161").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := deleteLike("1", "tt0111161")
	require.NoError(t, h.Remove(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLikeRejectsBadUserID(t *testing.T) {
	h, mock := newLikeHandler(t)

	c, rec := deleteLike("abc", "tt0111161")
	require.NoError(t, h.Remove(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Champs requis manquants"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListLikesProjection(t *testing.T) {
	h, mock := newLikeHandler(t)
	cols := []string{"id", "imdb_id", "title", "year", "poster", "type", "created_at"}
	mock.ExpectQuery("SELECT m.id, m.imdb_id, m.title").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "tt0111161", "The Shawshank Redemption", "1994", "p1", "movie", time.Now()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/likes/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("1")
	require.NoError(t, h.ListByUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"likes":[{"imdbID":"tt0111161","Title":"The Shawshank Redemption","Year":"1994","Poster":"p1","Type":"movie"}]}`,
		rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListLikesEmpty(t *testing.T) {
	h, mock := newLikeHandler(t)
	cols := []string{"id", "imdb_id", "title", "year", "poster", "type", "created_at"}
	mock.ExpectQuery("SELECT m.id, m.imdb_id, m.title").
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows(cols))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/likes/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("42")
	require.NoError(t, h.ListByUser(c))

	assert.JSONEq(t, `{"success":true,"likes":[]}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
