package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolked/yolked/internal/server/config"
	"github.com/yolked/yolked/internal/server/handlers"
	"github.com/yolked/yolked/internal/server/middleware"
	"github.com/yolked/yolked/internal/server/repository"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	authHandler := handlers.NewAuthHandler(
		userRepo,
		registrationRepo,
		cfg.JWTSecret,
		cfg.GoogleAuthBaseURL,
		cfg.OAuthRedirectURL,
	)
	profileHandler := handlers.NewProfileHandler(profileRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/oauth/:provider", authHandler.OAuthURL)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)
	auth.Post("/logout", middleware.AuthRequired(cfg.JWTSecret), authHandler.Logout)

	protected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))
	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile/onboarding", profileHandler.Onboarding)
}
