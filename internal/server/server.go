package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"chatbot/internal/domain"
	"chatbot/internal/engine"
)

// chatRequest is the body the widget posts in backend mode.
type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// New assembles the HTTP front-end: the chatbot endpoint the widget
// calls plus the static site it lives on.
func New(eng *engine.Engine, staticDir string, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(fiberlogger.New())

	app.Post("/api/chatbot", chatHandler(eng, log))

	if staticDir != "" {
		log.Info("serving static site", zap.String("dir", staticDir))
		app.Static("/", staticDir)
	}

	return app
}

// chatHandler answers widget messages. The lang query parameter
// overrides the locale the engine detected at initialization,
// mirroring the widget's backend mode.
func chatHandler(eng *engine.Engine, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(req.Message) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "message is required")
		}
		locale := domain.ParseLocale(c.Query("lang"))
		reply := eng.ProcessQueryIn(c.Context(), req.Message, locale)
		log.Debug("chat handled",
			zap.String("message", req.Message),
			zap.String("lang", string(locale)))
		return c.JSON(chatResponse{Reply: reply})
	}
}
