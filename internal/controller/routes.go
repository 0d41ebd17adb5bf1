package controller

import (
	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and WebSocket endpoints on app.
func RegisterRoutes(app *fiber.App, gc *GameController, wsc *WebSocketController, origins []string) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Set up WebSocket routes
	app.Use("/ws", middleware.EnsureClientID(), middleware.WebSocketUpgrade())
	app.Get("/ws/game", websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}))

	// Set up REST routes
	api := app.Group("/api")
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gc.GetGameState)
	gameRoutes.Post("/activate/:square", gc.ActivateSquare)
	gameRoutes.Get("/targets/:square", gc.GetLegalTargets)
	gameRoutes.Post("/reset", gc.ResetGame)
}
