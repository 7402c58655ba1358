package controller

import (
	"log"

	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Register mounts the read-only spectator routes on app.
func Register(app *fiber.App, gameService *service.GameService, logger *log.Logger) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService, logger)

	app.Use("/ws", middleware.EnsureSpectatorID())
	app.Get("/ws/game", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gameController.GetGameState)
	gameRoutes.Get("/board.svg", gameController.GetBoardSVG)
}
