package handler

import (
	"github.com/labstack/echo/v4"
)

// Client-facing messages. The front-end is French, so domain outcomes keep
// the wording it already displays; internals are logged in English and never
// echoed back.
const (
	msgMissingFields      = "Champs requis manquants"
	msgUsernameTaken      = "Nom d'utilisateur déjà pris"
	msgInvalidCredentials = "Nom d'utilisateur ou mot de passe incorrect"
	msgMovieNotFound      = "Film introuvable"
	msgAlreadyLiked       = "Film déjà liké"
	msgUnavailable        = "Service momentanément indisponible"
	msgInternal           = "Erreur interne du serveur"
)

// fail writes the {success:false, message} envelope. Domain failures go out
// with HTTP 200 (the client discriminates on the success flag); only
// unavailable/internal conditions carry a non-200 status.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}
