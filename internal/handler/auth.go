package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antnlgr/cinelike/internal/config"
	"github.com/antnlgr/cinelike/internal/model"
	"github.com/antnlgr/cinelike/internal/repository"
)

// AuthHandler bundles dependencies for the signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResp struct {
	Success bool             `json:"success"`
	User    model.PublicUser `json:"user"`
}

// Signup creates an account and returns its public projection. The password
// is hashed in the store; it is never persisted or returned in clear.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, msgMissingFields)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return fail(c, http.StatusOK, msgMissingFields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return fail(c, http.StatusOK, msgUsernameTaken)
		case repository.IsUnavailable(err):
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		default:
			log.Printf("signup: create user failed: %v", err)
			return fail(c, http.StatusInternalServerError, msgInternal)
		}
	}
	return c.JSON(http.StatusOK, authResp{Success: true, User: user})
}

// Login verifies credentials. An unknown username and a wrong password return
// the same message so the response does not reveal which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusOK, msgMissingFields)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return fail(c, http.StatusOK, msgMissingFields)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidCredentials):
			return fail(c, http.StatusOK, msgInvalidCredentials)
		case repository.IsUnavailable(err):
			return fail(c, http.StatusServiceUnavailable, msgUnavailable)
		default:
			log.Printf("login: verify credentials failed: %v", err)
			return fail(c, http.StatusInternalServerError, msgInternal)
		}
	}
	return c.JSON(http.StatusOK, authResp{Success: true, User: user})
}
