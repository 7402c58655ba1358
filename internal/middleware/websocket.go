package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade lets only upgrade requests through to the spectator feed and
// hands the spectator id over to the websocket handler. It must run after
// EnsureSpectatorID.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		spectatorID := c.Locals(SpectatorIDKey)
		if spectatorID == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "spectator ID is required",
			})
		}

		// Locals set here survive the upgrade; the websocket handler reads them back
		c.Locals(WSSpectatorIDKey, spectatorID)
		return c.Next()
	}
}
