package server

import (
	"reentrybuddy/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoadCheckIns handles GET /api/checkins?first_name=&last_name=
// Returns the recent-first history, today's check-in and the current streak
// in one response. Storage read failures degrade to empty results.
func (s *Server) LoadCheckIns(c *fiber.Ctx) error {
	session, ok := sessionFromQuery(c)
	if !ok {
		return nil
	}
	ctx := withSessionUser(c, session)

	summary := s.checkInService.LoadCheckIns(ctx, session)
	return c.JSON(summary)
}

// AddCheckIn handles POST /api/checkins
// The user must have signed in before; timestamps and identifiers are
// assigned server-side.
func (s *Server) AddCheckIn(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Feeling   string `json:"feeling"`
		Goal      string `json:"goal"`
		Journal   string `json:"journal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session := models.Session{FirstName: req.FirstName, LastName: req.LastName}
	if session.FirstName == "" || session.LastName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("firstName and lastName are required"))
	}

	ctx := withSessionUser(c, session)

	checkIn, err := s.checkInService.AddCheckIn(ctx, session, models.InsertCheckIn{
		Feeling: req.Feeling,
		Goal:    req.Goal,
		Journal: req.Journal,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(checkIn)
}

// ClearUser handles DELETE /api/users?first_name=&last_name=
// Removes the user record and their check-in collection together.
func (s *Server) ClearUser(c *fiber.Ctx) error {
	session, ok := sessionFromQuery(c)
	if !ok {
		return nil
	}
	ctx := withSessionUser(c, session)

	if err := s.store.ClearUser(ctx, session.FirstName, session.LastName); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
