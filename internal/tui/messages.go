// internal/tui/messages.go
//
// Message types passed through the bubbletea update loop. Screens talk to the
// app shell exclusively through these; no screen reaches into another.

package tui

import (
	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/session"
)

// resolvedMsg carries the session resolver's answer for a boundary entry.
type resolvedMsg struct {
	result session.Result
}

// authChangeMsg is delivered for every auth state transition reported by the
// service client. Each one re-runs session resolution.
type authChangeMsg struct {
	event api.AuthEvent
}

// authErrMsg surfaces a sign-in/sign-up failure on the active auth screen.
type authErrMsg struct {
	message string
}

// authOKMsg reports a successful credential exchange. Navigation happens via
// the auth-change event and the resolver, not here; the credentials seed the
// wizard draft when resolution routes into it during this session.
type authOKMsg struct {
	event api.AuthEvent
	creds onboarding.CredentialFields
}

// oauthMsg carries the provider hand-off URL (or the failure to get one).
type oauthMsg struct {
	url string
	err error
}

// advanceMsg is a wizard step's forward transition: validation passed and the
// draft has been extended with the step's fields.
type advanceMsg struct {
	from  onboarding.Step
	draft onboarding.Draft
}

// backMsg is the unconditional backward transition. The draft rides along
// unchanged; going back never validates and never mutates it.
type backMsg struct {
	from  onboarding.Step
	draft onboarding.Draft
}

// welcomeChoiceMsg is the welcome screen's menu selection.
type welcomeChoiceMsg struct {
	choice welcomeChoice
}

type welcomeChoice int

const (
	chooseRegister welcomeChoice = iota
	chooseLogin
	chooseGoogle
)

// commitResultMsg resolves one commit attempt. The attempt number guards
// against rendering a stale response after a retry was issued.
type commitResultMsg struct {
	attempt int
	profile *api.Profile
	err     error
}

// successFrameMsg advances the commit screen's confirmation animation by one
// frame. The sequence runs once and stops on the final frame.
type successFrameMsg struct{}

// startTrainingMsg is the commit screen's terminal action: replace the whole
// flow with the main app.
type startTrainingMsg struct {
	profile *api.Profile
}

// signOutDoneMsg reports the profile tab's sign-out call finishing.
type signOutDoneMsg struct {
	err error
}
