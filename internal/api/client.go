// Package api is the client for the Yolked identity/profile service. The TUI
// only depends on the Client interface; the HTTP implementation lives in
// http.go so tests can swap in fakes.
package api

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors the flow branches on. Everything else surfaces verbatim as
// the service's message string.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoSession       = errors.New("no active session")
)

// User is the authenticated identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the persisted server-side record. Pointer fields are absent
// until onboarding writes them.
type Profile struct {
	UserID              string    `json:"user_id"`
	FirstName           *string   `json:"first_name"`
	LastName            *string   `json:"last_name"`
	FitnessLevel        *string   `json:"fitness_level"`
	PrimaryGoal         *string   `json:"primary_goal"`
	GymType             *string   `json:"gym_type"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Session pairs a bearer token with the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileFields is the single onboarding write. The service flips
// onboarding_completed to true in the same request; there is no separate
// "flag only" call.
type ProfileFields struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FitnessLevel string `json:"fitness_level"`
	PrimaryGoal  string `json:"primary_goal"`
	GymType      string `json:"gym_type"`
}

// SignUpMeta carries profile metadata collected before account creation.
type SignUpMeta struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AuthEvent describes an authentication state transition. Every event re-runs
// session resolution in the TUI.
type AuthEvent string

const (
	EventSignedUp  AuthEvent = "signed_up"
	EventSignedIn  AuthEvent = "signed_in"
	EventSignedOut AuthEvent = "signed_out"
)

// Client is the shape of every call the onboarding flow issues. All methods
// honor context cancellation.
type Client interface {
	SignUp(ctx context.Context, email, password string, meta SignUpMeta) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignInWithOAuth(ctx context.Context, provider string) (string, error)
	CurrentUser(ctx context.Context) (*User, error)
	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, fields ProfileFields) (*Profile, error)
	SignOut(ctx context.Context) error
	OnAuthChange(fn func(AuthEvent))
}
