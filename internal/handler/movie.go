package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antnlgr/cinelike/internal/model"
	"github.com/antnlgr/cinelike/internal/repository"
)

// MovieHandler exposes the read-only catalog.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(m *repository.MovieRepo) *MovieHandler {
	return &MovieHandler{Movies: m}
}

// List returns the whole catalog as a bare array of projections, ordered by
// internal id. A store failure answers 503 rather than the old silent empty
// array, so clients can tell "no movies" from "catalog unreachable".
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		if repository.IsUnavailable(err) {
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		}
		log.Printf("movies: list failed: %v", err)
		return fail(c, http.StatusInternalServerError, msgInternal)
	}

	out := make([]model.MovieProjection, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Projection())
	}
	return c.JSON(http.StatusOK, out)
}
