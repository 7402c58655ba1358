package controller

import (
	"bytes"

	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.Snapshot())
}

func (gc *GameController) GetBoardSVG(c *fiber.Ctx) error {
	var buf bytes.Buffer
	gc.gameService.WriteSVG(&buf)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}
