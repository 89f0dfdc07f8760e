// Package session decides where the app lands on a cold start or after an
// auth transition: straight into the main app, into the wizard, or at the
// welcome screen. Resolution fails open toward onboarding: a broken profile
// fetch must never look like a completed one.
package session

import (
	"context"

	"github.com/yolked/yolked/internal/api"
)

// Route is the resolver's answer.
type Route int

const (
	// RouteWelcome: no identity; start at the welcome screen with an empty draft.
	RouteWelcome Route = iota
	// RouteOnboarding: signed in but profile incomplete or unreadable; restart
	// the wizard at its first step with an empty draft.
	RouteOnboarding
	// RouteMain: signed in with a completed profile; skip onboarding entirely.
	RouteMain
)

func (r Route) String() string {
	switch r {
	case RouteOnboarding:
		return "onboarding"
	case RouteMain:
		return "main"
	}
	return "welcome"
}

// Result carries the route plus whatever the resolver learned along the way,
// so the main screen does not have to refetch the profile it was routed on.
type Result struct {
	Route   Route
	User    *api.User
	Profile *api.Profile
}

// Resolver queries the service once per boundary entry. It has no side
// effects beyond the calls it issues.
type Resolver struct {
	client api.Client
}

// New builds a resolver over the given service client.
func New(client api.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve picks the entry route. Any service error during resolution is
// swallowed and routes toward onboarding, never toward the main app.
func (r *Resolver) Resolve(ctx context.Context) Result {
	user, err := r.client.CurrentUser(ctx)
	if err != nil || user == nil {
		return Result{Route: RouteWelcome}
	}

	profile, err := r.client.Profile(ctx)
	if err != nil || profile == nil {
		// Missing or unreadable profile means "needs onboarding".
		return Result{Route: RouteOnboarding, User: user}
	}
	if profile.OnboardingCompleted {
		return Result{Route: RouteMain, User: user, Profile: profile}
	}
	return Result{Route: RouteOnboarding, User: user, Profile: profile}
}
