package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reentrybuddy/internal/middleware"
	"reentrybuddy/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSessionUser(t *testing.T) {
	app := fiber.New()

	var got any
	app.Get("/whoami", func(c *fiber.Ctx) error {
		ctx := withSessionUser(c, models.Session{FirstName: "Ana", LastName: "Lee"})
		got = ctx.Value(middleware.UserNameKey)
		// The annotated context must also be the request's user context so
		// the request log line picks it up.
		assert.Equal(t, got, c.UserContext().Value(middleware.UserNameKey))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ana lee", got)
}
