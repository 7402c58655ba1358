package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SpectatorIDKey = "spectatorID"
	// WSSpectatorIDKey is the local the websocket handler reads after the upgrade.
	WSSpectatorIDKey = "wsSpectatorID"
)

// EnsureSpectatorID stores a spectator id in the request locals. It comes from
// the X-Spectator-ID header, then the spectatorId query parameter, and is
// generated when neither is present.
func EnsureSpectatorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(SpectatorIDKey) != nil {
			return c.Next()
		}

		spectatorID := c.Get("X-Spectator-ID")
		if spectatorID == "" {
			spectatorID = c.Query("spectatorId")
		}
		if spectatorID == "" {
			spectatorID = uuid.New().String()
		}

		c.Locals(SpectatorIDKey, spectatorID)
		c.Set("X-Spectator-ID", spectatorID)
		return c.Next()
	}
}
