// internal/onboarding/draft.go
//
// The Draft is the profile record the wizard builds up one screen at a time.
// Every screen produces a typed Fields value; Extend merges it into a fresh
// copy of the draft. Nothing in this package mutates a draft in place.

package onboarding

import "strings"

// FitnessLevel is the self-reported training experience bracket.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Goal is the primary training goal.
type Goal string

const (
	GoalStrength   Goal = "strength"
	GoalMuscle     Goal = "muscle"
	GoalLoseWeight Goal = "lose_weight"
	GoalGeneral    Goal = "general"
)

// GymType describes the equipment the user trains with.
type GymType string

const (
	GymCommercial GymType = "commercial"
	GymHome       GymType = "home"
	GymNone       GymType = "none"
)

// AuthMethod records how the account was created.
type AuthMethod string

const (
	AuthEmail  AuthMethod = "email"
	AuthGoogle AuthMethod = "google"
)

// Draft accumulates profile fields across the wizard. Zero values mean
// "not collected yet". A draft is created empty when the flow starts, grows
// at each step transition, and is consumed whole by the commit screen.
// It is never written to disk; restarting the app mid-flow starts over.
type Draft struct {
	Email        string
	AuthMethod   AuthMethod
	FirstName    string
	LastName     string
	FitnessLevel FitnessLevel
	PrimaryGoal  Goal
	GymType      GymType
}

// Fields is one step's contribution to the draft. Each wizard step has its
// own variant so a step can only ever supply the keys it owns.
type Fields interface {
	apply(Draft) Draft
}

// Extend returns a new draft equal to d plus the step's fields. Incoming
// fields win if a step re-supplies a key it already set; the standard flow
// never does, but back-then-forward navigation may.
func Extend(d Draft, f Fields) Draft {
	if f == nil {
		return d
	}
	return f.apply(d)
}

// CredentialFields is produced by the register/login gates.
type CredentialFields struct {
	Email  string
	Method AuthMethod
}

func (f CredentialFields) apply(d Draft) Draft {
	d.Email = strings.TrimSpace(strings.ToLower(f.Email))
	d.AuthMethod = f.Method
	return d
}

// NameFields is produced by the personal-info step.
type NameFields struct {
	FirstName string
	LastName  string
}

func (f NameFields) apply(d Draft) Draft {
	d.FirstName = strings.TrimSpace(f.FirstName)
	d.LastName = strings.TrimSpace(f.LastName)
	return d
}

// LevelFields is produced by the fitness-level step.
type LevelFields struct {
	Level FitnessLevel
}

func (f LevelFields) apply(d Draft) Draft {
	d.FitnessLevel = f.Level
	return d
}

// GoalFields is produced by the goals step.
type GoalFields struct {
	Goal Goal
}

func (f GoalFields) apply(d Draft) Draft {
	d.PrimaryGoal = f.Goal
	return d
}

// GymFields is produced by the gym-type step.
type GymFields struct {
	Gym GymType
}

func (f GymFields) apply(d Draft) Draft {
	d.GymType = f.Gym
	return d
}
