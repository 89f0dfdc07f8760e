// internal/tui/app.go
//
// The main TUI for the yolked client, following The Elm Architecture the way
// bubbletea lays it out: one App model, one Update routing messages, one View
// rendering the active screen. The App owns navigation: it decides which
// screen is live, threads the profile draft between wizard steps, and runs
// session resolution at every cold start and auth transition.

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/logbook"
	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/session"
	"github.com/yolked/yolked/internal/theme"
)

// appState represents which screen is live.
type appState int

const (
	stateResolving appState = iota
	stateWelcome
	stateRegister
	stateLogin
	stateWizard // personal info through gym type
	stateCommit // the terminal commit screen
	stateMain   // tab shell after onboarding
)

const resolveTimeout = 20 * time.Second

// screenModel is the contract every screen implements.
type screenModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screenModel, tea.Cmd)
	View(width int) string
}

// App is the root model holding all application state.
type App struct {
	client   api.Client
	resolver *session.Resolver
	log      *logbook.Logbook
	th       theme.Theme

	state  appState
	screen screenModel
	step   onboarding.Step
	draft  onboarding.Draft

	// creds holds the credential exchange the user just completed on an
	// account screen, consumed by the next routing into the wizard. A cold
	// start never has one, so a resumed wizard begins with an empty draft.
	creds *onboarding.CredentialFields

	progressBar progress.Model
	authEvents  chan api.AuthEvent

	width  int
	height int

	statusMsg string
	showDebug bool
}

// debugTailLines is how many logbook entries the debug panel shows.
const debugTailLines = 10

// NewApp wires the root model over the service client. The logbook may be
// nil; logging is best-effort.
func NewApp(client api.Client, lb *logbook.Logbook) *App {
	a := &App{
		client:      client,
		resolver:    session.New(client),
		log:         lb,
		th:          theme.Default(),
		state:       stateResolving,
		progressBar: progress.New(progress.WithDefaultGradient()),
		authEvents:  make(chan api.AuthEvent, 8),
	}
	client.OnAuthChange(func(e api.AuthEvent) {
		select {
		case a.authEvents <- e:
		default:
		}
	})
	return a
}

// Init kicks off the first session resolution and starts listening for auth
// transitions.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.resolveCmd(), a.waitForAuthEvent())
}

func (a *App) resolveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()
		return resolvedMsg{result: a.resolver.Resolve(ctx)}
	}
}

func (a *App) waitForAuthEvent() tea.Cmd {
	return func() tea.Msg {
		return authChangeMsg{event: <-a.authEvents}
	}
}

// Update routes messages to the app shell first, then to the live screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.progressBar.Width = clamp(msg.Width-8, 16, 48)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			a.showDebug = !a.showDebug
			return a, nil
		}

	case authChangeMsg:
		a.logInfo("auth event: %s", msg.event)
		return a, tea.Batch(a.resolveCmd(), a.waitForAuthEvent())

	case authOKMsg:
		creds := msg.creds
		a.creds = &creds
		// The active auth screen still wants this message.

	case resolvedMsg:
		return a.applyResolution(msg.result)

	case welcomeChoiceMsg:
		switch msg.choice {
		case chooseRegister:
			a.enterAccountScreen(stateRegister)
		case chooseLogin:
			a.enterAccountScreen(stateLogin)
		}
		return a, nil

	case advanceMsg:
		return a.advanceFrom(msg.from, msg.draft)

	case backMsg:
		return a.goBackFrom(msg.from, msg.draft)

	case startTrainingMsg:
		a.enterMainApp(msg.profile)
		return a, nil

	case signOutDoneMsg:
		if msg.err != nil {
			a.statusMsg = msg.err.Error()
			a.logWarn("sign out failed: %v", msg.err)
		}
		// The signed_out event re-runs resolution and lands on welcome.
		return a, nil
	}

	if a.screen == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.screen, cmd = a.screen.Update(msg)
	return a, cmd
}

// applyResolution routes the app after a session resolution. A resolution
// that says "onboarding" while the user is already mid-wizard is a no-op:
// token refreshes must not reset a flow in progress.
func (a *App) applyResolution(res session.Result) (tea.Model, tea.Cmd) {
	a.logInfo("resolved route: %s", res.Route)

	switch res.Route {
	case session.RouteMain:
		a.creds = nil
		a.enterMainApp(res.Profile)
		return a, nil

	case session.RouteOnboarding:
		if a.state == stateWizard || a.state == stateCommit {
			return a, nil
		}
		// Resuming an incomplete profile restarts with an empty draft. Only
		// a credential exchange completed this session contributes to it.
		draft := onboarding.Draft{}
		if a.creds != nil {
			draft = onboarding.Extend(draft, *a.creds)
			a.creds = nil
		}
		return a.enterWizardStep(onboarding.FirstWizardStep, draft)

	default:
		a.creds = nil
		a.state = stateWelcome
		a.step = onboarding.StepWelcome
		a.draft = onboarding.Draft{}
		a.screen = newWelcomeScreen(a.th, a.client)
		return a, a.screen.Init()
	}
}

func (a *App) enterAccountScreen(state appState) {
	a.state = state
	a.step = onboarding.StepAccount
	if state == stateRegister {
		a.screen = newRegisterScreen(a.th, a.client)
	} else {
		a.screen = newLoginScreen(a.th, a.client)
	}
}

// enterWizardStep builds the screen for a wizard step with the given draft.
// Screens are constructed fresh each time: local form state is deliberately
// not restored when the user navigates back and forward again.
func (a *App) enterWizardStep(step onboarding.Step, draft onboarding.Draft) (tea.Model, tea.Cmd) {
	a.step = step
	a.draft = draft

	switch step {
	case onboarding.StepPersonalInfo:
		a.state = stateWizard
		a.screen = newPersonalInfoScreen(a.th, draft)
	case onboarding.StepFitnessLevel:
		a.state = stateWizard
		a.screen = newFitnessLevelScreen(a.th, draft)
	case onboarding.StepGoals:
		a.state = stateWizard
		a.screen = newGoalsScreen(a.th, draft)
	case onboarding.StepGymType:
		a.state = stateWizard
		a.screen = newGymTypeScreen(a.th, draft)
	case onboarding.StepComplete:
		a.state = stateCommit
		a.screen = newCommitScreen(a.th, a.client, a.log, draft)
	default:
		a.state = stateWelcome
		a.screen = newWelcomeScreen(a.th, a.client)
	}
	return a, a.screen.Init()
}

func (a *App) advanceFrom(from onboarding.Step, draft onboarding.Draft) (tea.Model, tea.Cmd) {
	next := from.Next()
	a.logInfo("step %s -> %s", from, next)
	return a.enterWizardStep(next, draft)
}

// goBackFrom is the unconditional backward transition: no validation, no
// draft mutation. Backing out of the first wizard step returns to welcome.
func (a *App) goBackFrom(from onboarding.Step, draft onboarding.Draft) (tea.Model, tea.Cmd) {
	if from == onboarding.FirstWizardStep || from == onboarding.StepAccount {
		a.state = stateWelcome
		a.step = onboarding.StepWelcome
		a.draft = draft
		a.screen = newWelcomeScreen(a.th, a.client)
		return a, a.screen.Init()
	}
	prev := from.Prev()
	a.logInfo("step %s -> %s (back)", from, prev)
	return a.enterWizardStep(prev, draft)
}

func (a *App) enterMainApp(profile *api.Profile) {
	a.state = stateMain
	a.draft = onboarding.Draft{}
	a.screen = newMainScreen(a.th, a.client, profile)
	a.logInfo("entered main app")
}

// View renders the brand header, the step progress when a wizard step is
// live, and the active screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}

	sections := []string{a.th.Logo.Render("⚡ YOLKED")}

	if a.state == stateWizard {
		pos, total := a.step.Position()
		bar := a.progressBar.ViewAs(float64(pos) / float64(total))
		label := a.th.Progress.Render(stepLabel(pos, total))
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", label))
	}

	switch {
	case a.state == stateResolving || a.screen == nil:
		sections = append(sections, a.th.Subtitle.Render("Loading your session..."))
	default:
		sections = append(sections, a.screen.View(width))
	}

	if a.statusMsg != "" {
		sections = append(sections, a.th.Help.Render(a.statusMsg))
	}
	if a.showDebug {
		sections = append(sections, a.debugPanel())
	}
	return strings.Join(sections, "\n\n")
}

// debugPanel renders the tail of the logbook, toggled with ctrl+l.
func (a *App) debugPanel() string {
	var b strings.Builder
	b.WriteString(a.th.Label.Render("debug log"))
	if a.log == nil {
		b.WriteString("\n")
		b.WriteString(a.th.Help.Render("no logbook configured"))
		return b.String()
	}
	lines := a.log.Tail(debugTailLines)
	if len(lines) == 0 {
		b.WriteString("\n")
		b.WriteString(a.th.Help.Render("log empty: " + a.log.Path()))
		return b.String()
	}
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(a.th.Help.Render(line))
	}
	return b.String()
}

func (a *App) logInfo(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.Warn(format, args...)
}

func stepLabel(pos, total int) string {
	return fmt.Sprintf("Step %d of %d", pos, total)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
