package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antnlgr/cinelike/internal/config"
	"github.com/antnlgr/cinelike/internal/model"
	"github.com/antnlgr/cinelike/internal/queue"
	"github.com/antnlgr/cinelike/internal/repository"
	queue_publisher "github.com/antnlgr/cinelike/internal/service"
)

// LikeHandler exposes the likes relation: like, unlike and per-user listing.
type LikeHandler struct {
	Cfg   config.Config
	Likes *repository.LikeRepo
}

func NewLikeHandler(cfg config.Config, l *repository.LikeRepo) *LikeHandler {
	return &LikeHandler{Cfg: cfg, Likes: l}
}

// ----- DTOs -----

type likeReq struct {
	UserID uint64 `json:"userId"`
	ImdbID string `json:"imdbId"`
}

type likesResp struct {
	Success bool                    `json:"success"`
	Likes   []model.MovieProjection `json:"likes"`
}

// Add records a like for (userId, imdbId). Liking the same movie twice
// returns the "Film déjà liké" envelope; the unique key in the store decides
// the winner when two identical likes race.
func (h *LikeHandler) Add(c echo.Context) error {
	var req likeReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, msgMissingFields)
	}
	req.ImdbID = strings.TrimSpace(req.ImdbID)
	if req.UserID == 0 || req.ImdbID == "" {
		return fail(c, http.StatusOK, msgMissingFields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Likes.Add(ctx, req.UserID, req.ImdbID); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return fail(c, http.StatusOK, msgMovieNotFound)
		case errors.Is(err, repository.ErrAlreadyLiked):
			return fail(c, http.StatusOK, msgAlreadyLiked)
		case repository.IsUnavailable(err):
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		default:
			log.Printf("likes: add failed: %v", err)
			return fail(c, http.StatusInternalServerError, msgInternal)
		}
	}

	h.publishActivity(req.UserID, req.ImdbID, queue.ActionLike)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Remove deletes a like identified by path params. Unliking a movie that was
// never liked is a success, so the operation can be retried freely.
func (h *LikeHandler) Remove(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	imdbID := strings.TrimSpace(c.Param("imdbId"))
	if err != nil || userID == 0 || imdbID == "" {
		return fail(c, http.StatusOK, msgMissingFields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Likes.Remove(ctx, userID, imdbID); err != nil {
		if repository.IsUnavailable(err) {
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		}
		log.Printf("likes: remove failed: %v", err)
		return fail(c, http.StatusInternalServerError, msgInternal)
	}

	h.publishActivity(userID, imdbID, queue.ActionUnlike)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ListByUser returns the movies a user liked, most recent like first.
func (h *LikeHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		return fail(c, http.StatusOK, msgMissingFields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Likes.ListByUser(ctx, userID)
	if err != nil {
		if repository.IsUnavailable(err) {
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		}
		log.Printf("likes: list failed: %v", err)
		return fail(c, http.StatusInternalServerError, msgInternal)
	}

	out := make([]model.MovieProjection, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Projection())
	}
	return c.JSON(http.StatusOK, likesResp{Success: true, Likes: out})
}

// publishActivity sends a like/unlike event to the broker in the background.
// Publishing is best effort: a broker outage never delays or fails the
// request that triggered it.
func (h *LikeHandler) publishActivity(userID uint64, imdbID, action string) {
	if !h.Cfg.QueueEnabled {
		return
	}
	ev := queue.LikeActivityEvent{
		UserID:     userID,
		ImdbID:     imdbID,
		Action:     action,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishLikeActivity(ctx, ev)
	}()
}
