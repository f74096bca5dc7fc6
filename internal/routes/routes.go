package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/oguzsenna/skillswap-api/internal/config"
	"github.com/oguzsenna/skillswap-api/internal/handlers"
	"github.com/oguzsenna/skillswap-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	skillHandler *handlers.SkillHandler,
	matchHandler *handlers.MatchHandler,
	reviewHandler *handlers.ReviewHandler,
	messageHandler *handlers.MessageHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Users
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/profile", userHandler.GetProfile)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Get("/recommend", userHandler.Recommendations)
	users.Get("/nearby", userHandler.NearbyMatches)

	// Skills — reads are public, writes require auth. Static paths are
	// registered before /:id so they are not captured by the param route.
	skills := api.Group("/skills")
	skills.Get("/", skillHandler.ListSkills)
	skills.Get("/categories", skillHandler.Categories)
	skills.Get("/search", skillHandler.SearchSkills)
	skills.Get("/trending", skillHandler.TrendingSkills)
	skills.Get("/:id", skillHandler.GetSkill)
	skills.Post("/", middleware.JWTProtected(cfg), skillHandler.CreateSkill)
	skills.Put("/:id", middleware.JWTProtected(cfg), skillHandler.UpdateSkill)
	skills.Delete("/:id", middleware.JWTProtected(cfg), skillHandler.DeleteSkill)

	// Matches
	matches := api.Group("/matches", middleware.JWTProtected(cfg))
	matches.Post("/request", matchHandler.CreateMatch)
	matches.Get("/my-matches", matchHandler.MyMatches)
	matches.Put("/:matchId/status", matchHandler.UpdateStatus)

	// Reviews
	reviews := api.Group("/reviews", middleware.JWTProtected(cfg))
	reviews.Post("/", reviewHandler.CreateReview)
	reviews.Get("/received", reviewHandler.ReceivedReviews)

	// Messages
	messages := api.Group("/messages", middleware.JWTProtected(cfg))
	messages.Post("/send", messageHandler.SendMessage)
	messages.Get("/conversations", messageHandler.Conversations)
	messages.Get("/:userId/chat", messageHandler.ChatHistory)
}
