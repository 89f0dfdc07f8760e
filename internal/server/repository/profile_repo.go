package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yolked/yolked/internal/server/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type OnboardingInput struct {
	FirstName    string
	LastName     string
	FitnessLevel string
	PrimaryGoal  string
	GymType      string
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, user_id, first_name, last_name, fitness_level, primary_goal,
			   gym_type, onboarding_completed, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.FitnessLevel,
		&profile.PrimaryGoal,
		&profile.GymType,
		&profile.OnboardingCompleted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CompleteOnboarding writes all collected fields and flips the completion
// flag in one statement, so a profile is never half-onboarded.
func (r *ProfileRepository) CompleteOnboarding(ctx context.Context, userID uuid.UUID, req OnboardingInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET first_name = $1,
			last_name = $2,
			fitness_level = $3,
			primary_goal = $4,
			gym_type = $5,
			onboarding_completed = TRUE,
			updated_at = NOW()
		WHERE user_id = $6
		RETURNING id, user_id, first_name, last_name, fitness_level, primary_goal,
				  gym_type, onboarding_completed, created_at, updated_at
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query,
		req.FirstName,
		req.LastName,
		req.FitnessLevel,
		req.PrimaryGoal,
		req.GymType,
		userID,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.FitnessLevel,
		&profile.PrimaryGoal,
		&profile.GymType,
		&profile.OnboardingCompleted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
