package server

import (
	"github.com/geosohn7/FunRun/internal/auth"
	"github.com/geosohn7/FunRun/internal/config"
	"github.com/geosohn7/FunRun/internal/leaderboard"
	"github.com/geosohn7/FunRun/internal/progression"
	"github.com/geosohn7/FunRun/internal/run"
	"github.com/geosohn7/FunRun/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Memory stores keep the service usable when postgres is absent.
	var runStore run.Store = run.NewMemoryStore()
	var userStore user.Store = user.NewMemoryStore()
	if s.DB != nil {
		runStore = run.NewPostgresStore(s.DB)
		userStore = user.NewPostgresStore(s.DB)
	}

	board := leaderboard.New(s.Redis)
	users := user.NewService(userStore)
	engine := progression.NewEngine(userStore, board)
	manager := run.NewManager(runStore, engine)

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, users))
	user.RegisterRoutes(s.App.Group("/users"), users, board)
	run.RegisterRoutes(s.App.Group("/runs"), manager, jwtMiddleware)
}
