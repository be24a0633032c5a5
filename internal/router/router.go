package router // package router defines how HTTP routes are registered for the API

import (
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/antnlgr/cinelike/internal/handler"
)

// RegisterRoutes wires every route of the service onto the provided Echo
// instance. The movie listing is the only cached route: the catalog never
// changes after seeding, so responses can be replayed from Redis. cacheMW may
// be a pass-through when no Redis is available.
func RegisterRoutes(e *echo.Echo,
	auth *handler.AuthHandler,
	movies *handler.MovieHandler,
	likes *handler.LikeHandler,
	staticDir string,
	cacheMW echo.MiddlewareFunc,
) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Static front-end: landing page at the root plus its assets.
	e.File("/", filepath.Join(staticDir, "index.html"))
	e.Static("/public", staticDir)

	api := e.Group("/api")
	api.GET("/movies", movies.List, cacheMW)
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.POST("/likes", likes.Add)
	api.DELETE("/likes/:userId/:imdbId", likes.Remove)
	api.GET("/likes/:userId", likes.ListByUser)
}
