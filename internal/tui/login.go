package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/theme"
)

// loginScreen signs an existing account in.
type loginScreen struct {
	th     theme.Theme
	client api.Client

	inputs  []textinput.Model
	focus   int
	errs    onboarding.Errors
	loading bool
	errMsg  string
}

func newLoginScreen(th theme.Theme, client api.Client) *loginScreen {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	return &loginScreen{
		th:     th,
		client: client,
		inputs: []textinput.Model{email, password},
		errs:   onboarding.Errors{},
	}
}

func (s *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *loginScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.focus - 1)
			return s, nil
		case "enter":
			return s.submit()
		case "esc":
			return s, func() tea.Msg {
				return backMsg{from: onboarding.StepAccount, draft: onboarding.Draft{}}
			}
		}

	case authErrMsg:
		s.loading = false
		s.errMsg = msg.message
		return s, nil

	case authOKMsg:
		return s, nil
	}

	var cmds []tea.Cmd
	for i := range s.inputs {
		var cmd tea.Cmd
		s.inputs[i], cmd = s.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

func (s *loginScreen) setFocus(idx int) {
	if idx < 0 {
		idx = len(s.inputs) - 1
	}
	if idx >= len(s.inputs) {
		idx = 0
	}
	s.focus = idx
	for i := range s.inputs {
		if i == idx {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s *loginScreen) submit() (screenModel, tea.Cmd) {
	email := strings.TrimSpace(s.inputs[0].Value())
	password := s.inputs[1].Value()

	s.errs = onboarding.ValidateLogin(email, password)
	if !s.errs.Valid() {
		return s, nil
	}

	s.loading = true
	s.errMsg = ""
	client := s.client
	return s, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		if _, err := client.SignInWithPassword(ctx, email, password); err != nil {
			return authErrMsg{message: err.Error()}
		}
		return authOKMsg{
			event: api.EventSignedIn,
			creds: onboarding.CredentialFields{Email: email, Method: onboarding.AuthEmail},
		}
	}
}

func (s *loginScreen) View(width int) string {
	var b strings.Builder

	b.WriteString(s.th.Title.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(s.th.Subtitle.Render("Sign in to continue training"))
	b.WriteString("\n\n")

	fields := []string{"email", "password"}
	for i, input := range s.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
		if msg, ok := s.errs[fields[i]]; ok {
			b.WriteString(s.th.Error.Render(msg))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.th.Error.Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.loading {
		b.WriteString(s.th.Label.Render("Signing in..."))
	} else {
		b.WriteString(s.th.Help.Render("tab next field · enter sign in · esc back"))
	}
	return b.String()
}
