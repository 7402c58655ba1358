package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/console"
	"github.com/benbeisheim/hotseat-chess/internal/controller"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout *os.File, stderr io.Writer) int {
	cfg, err := config.Load(args, os.Getenv, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	appLog := log.New(stderr, "[hotseat] ", log.LstdFlags)
	gameService := service.NewGameService(appLog)

	if cfg.SpectateAddr != "" {
		app := newSpectatorApp(cfg, gameService, appLog, stderr)
		go func() {
			if err := app.Listen(cfg.SpectateAddr); err != nil {
				appLog.Printf("spectator server stopped: %v", err)
			}
		}()
		defer func() {
			if err := app.Shutdown(); err != nil {
				appLog.Printf("spectator server shutdown: %v", err)
			}
		}()
	}

	err = console.Play(stdin, console.Output(stdout, cfg.Color), gameService)
	switch {
	case errors.Is(err, console.ErrQuit):
		appLog.Printf("session %s: quit", gameService.ID)
	case err != nil:
		appLog.Printf("session %s: %v", gameService.ID, err)
		return 1
	}
	return 0
}

func newSpectatorApp(cfg config.Config, gameService *service.GameService, appLog *log.Logger, stderr io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: stderr,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Spectator-ID",
		AllowMethods: "GET, OPTIONS",
	}))
	controller.Register(app, gameService, appLog)
	appLog.Printf("spectator server listening on %s", cfg.SpectateAddr)
	return app
}
