package handlers

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yolked/yolked/internal/server/models"
	"github.com/yolked/yolked/internal/server/repository"
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, req repository.OnboardingInput) (*models.Profile, error)
}

type ProfileHandler struct {
	profileRepo profileStore
}

func NewProfileHandler(profileRepo profileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type onboardingRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FitnessLevel string `json:"fitness_level"`
	PrimaryGoal  string `json:"primary_goal"`
	GymType      string `json:"gym_type"`
}

var (
	fitnessLevels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}
	primaryGoals  = map[string]bool{"strength": true, "muscle": true, "lose_weight": true, "general": true}
	gymTypes      = map[string]bool{"commercial": true, "home": true, "none": true}
)

func validateOnboardingRequest(req onboardingRequest) string {
	if utf8.RuneCountInString(strings.TrimSpace(req.FirstName)) < 2 {
		return "First name must be at least 2 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.LastName)) < 2 {
		return "Last name must be at least 2 characters"
	}
	if !fitnessLevels[req.FitnessLevel] {
		return "Invalid fitness level"
	}
	if !primaryGoals[req.PrimaryGoal] {
		return "Invalid primary goal"
	}
	if !gymTypes[req.GymType] {
		return "Invalid gym type"
	}
	return ""
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) Onboarding(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req onboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileRepo.CompleteOnboarding(c.Context(), userID, repository.OnboardingInput{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		FitnessLevel: req.FitnessLevel,
		PrimaryGoal:  req.PrimaryGoal,
		GymType:      req.GymType,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}
