// Package httpapi exposes a session.Manager over HTTP and websockets.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/plyboard/internal/config"
	"github.com/lgbarn/plyboard/internal/session"
)

// Server routes requests to a session manager.
type Server struct {
	app   *fiber.App
	games *session.Manager
	cfg   *config.Config
}

// New builds the fiber app and registers every route.
func New(games *session.Manager, cfg *config.Config) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "plyboard",
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
		}),
		games: games,
		cfg:   cfg,
	}

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.Verbosity >= 2 && cfg.LogFile != nil {
		s.app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
			Output: cfg.LogFile,
		}))
	}

	api := s.app.Group("/api")
	api.Post("/games", s.createGame)
	api.Get("/games", s.listGames)
	api.Get("/games/:id", s.getGame)
	api.Get("/games/:id/text", s.getText)
	api.Get("/games/:id/moves", s.legalMoves)
	api.Post("/games/:id/moves", s.makeMove)
	api.Delete("/games/:id", s.deleteGame)

	if cfg.Server.EnableWebsocket {
		s.app.Use("/ws", requireUpgrade)
		s.app.Get("/ws/games/:id", websocket.New(s.streamGame, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		}))
	}
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.cfg.Logf(1, "listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for open requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}
