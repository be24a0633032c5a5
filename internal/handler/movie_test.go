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

	"github.com/antnlgr/cinelike/internal/repository"
)

func newMovieHandler(t *testing.T) (*MovieHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMovieHandler(repository.NewMovieRepo(db)), mock
}

func getMovies() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListMoviesBareArray(t *testing.T) {
	h, mock := newMovieHandler(t)
	cols := []string{"id", "imdb_id", "title", "year", "poster", "type", "created_at"}
	mock.ExpectQuery("SELECT id, imdb_id, title").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "tt0111161", "The Shawshank Redemption", "1994", "p1", "movie", time.Now()).
			AddRow(2, "tt0068646", "The Godfather", "1972", "p2", "movie", time.Now()))

	c, rec := getMovies()
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"imdbID":"tt0111161","Title":"The Shawshank Redemption","Year":"1994","Poster":"p1","Type":"movie"},
		  {"imdbID":"tt0068646","Title":"The Godfather","Year":"1972","Poster":"p2","Type":"movie"}]`,
		rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failing catalog read answers an error envelope instead of the old silent
// empty array, so clients can tell the two apart.
func TestListMoviesStoreFailure(t *testing.T) {
	h, mock := newMovieHandler(t)
	mock.ExpectQuery("SELECT id, imdb_id, title").
		WillReturnError(errors.New("table crashed"))

	c, rec := getMovies()
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Erreur interne du serveur"}`, rec.Body.String())
}
