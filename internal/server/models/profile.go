package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is one row of profiles. The nullable columns stay nil until the
// onboarding write fills them all at once.
type Profile struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	FirstName           *string   `json:"first_name"`
	LastName            *string   `json:"last_name"`
	FitnessLevel        *string   `json:"fitness_level"`
	PrimaryGoal         *string   `json:"primary_goal"`
	GymType             *string   `json:"gym_type"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
