package server

import (
	"context"
	"errors"
	"strings"

	"reentrybuddy/internal/middleware"
	"reentrybuddy/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps application error codes to HTTP statuses.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "STORAGE_ERROR":
			return fiber.StatusInternalServerError
		}
	}
	return fiber.StatusInternalServerError
}

// sessionFromQuery builds the explicit session value from first_name and
// last_name query parameters. Writes a 400 response and returns false when
// either is missing.
func sessionFromQuery(c *fiber.Ctx) (models.Session, bool) {
	session := models.Session{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
	}
	if session.FirstName == "" || session.LastName == "" {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("first_name and last_name query parameters are required"))
		return models.Session{}, false
	}
	return session, true
}

// withSessionUser stores the session's user name in the request context so
// request log lines and deeper layers carry it.
func withSessionUser(c *fiber.Ctx, session models.Session) context.Context {
	name := strings.ToLower(session.FirstName + " " + session.LastName)
	ctx := context.WithValue(c.UserContext(), middleware.UserNameKey, name)
	c.SetUserContext(ctx)
	return ctx
}
