package server

import (
	"reentrybuddy/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SignIn handles POST /api/auth/signin
// Resolves or creates the user for the supplied name pair and records the
// session pointer. Repeat sign-ins with any capitalization of the same name
// return the same user.
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req models.InsertUser
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx := withSessionUser(c, models.Session{FirstName: req.FirstName, LastName: req.LastName})

	user, session, err := s.authService.SignIn(ctx, req)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"user":    user,
		"session": session,
	})
}

// SignOut handles POST /api/auth/signout
// Clears the session pointer only; user and check-in records remain.
func (s *Server) SignOut(c *fiber.Ctx) error {
	if err := s.authService.SignOut(c.Context()); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me handles GET /api/auth/me
func (s *Server) Me(c *fiber.Ctx) error {
	user, err := s.authService.CurrentUser(c.Context())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Session", "current"))
	}
	return c.JSON(fiber.Map{"user": user})
}
