package controller

import (
	"errors"

	"github.com/benbeisheim/hotseat-chess/internal/model"
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
	return c.JSON(gc.gameService.GetGameState())
}

// ActivateSquare always answers 200 for a well-formed square, legal move or not.
func (gc *GameController) ActivateSquare(c *fiber.Ctx) error {
	result, err := gc.gameService.ActivateSquare(c.Params("square"))
	if err != nil {
		return squareError(c, err)
	}
	return c.JSON(result)
}

func (gc *GameController) GetLegalTargets(c *fiber.Ctx) error {
	square := c.Params("square")
	targets, err := gc.gameService.LegalTargets(square)
	if err != nil {
		return squareError(c, err)
	}
	return c.JSON(fiber.Map{
		"square":  square,
		"targets": targets,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state := gc.gameService.ResetGame()
	return c.JSON(fiber.Map{
		"message": "Game reset",
		"state":   state,
	})
}

func squareError(c *fiber.Ctx, err error) error {
	if errors.Is(err, model.ErrInvalidSquare) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to process square",
	})
}
