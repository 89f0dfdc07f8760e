package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/theme"
)

// welcomeScreen is the signed-out landing screen: the product pitch plus the
// three entry choices.
type welcomeScreen struct {
	th     theme.Theme
	client api.Client

	cursor   int
	oauthURL string
	errMsg   string
}

var welcomeItems = []struct {
	label  string
	choice welcomeChoice
}{
	{"Get Started", chooseRegister},
	{"I already have an account", chooseLogin},
	{"Continue with Google", chooseGoogle},
}

func newWelcomeScreen(th theme.Theme, client api.Client) *welcomeScreen {
	return &welcomeScreen{th: th, client: client}
}

func (s *welcomeScreen) Init() tea.Cmd { return nil }

func (s *welcomeScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(welcomeItems)-1 {
				s.cursor++
			}
		case "enter":
			choice := welcomeItems[s.cursor].choice
			if choice == chooseGoogle {
				return s, s.oauthCmd()
			}
			return s, func() tea.Msg { return welcomeChoiceMsg{choice: choice} }
		case "q", "esc":
			return s, tea.Quit
		}

	case oauthMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.oauthURL = msg.url
	}
	return s, nil
}

// oauthCmd asks the service for the Google hand-off URL. The terminal cannot
// finish the browser dance itself, so the URL is shown for the user to open;
// the auth-change listener picks the session up once the token lands.
func (s *welcomeScreen) oauthCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		url, err := s.client.SignInWithOAuth(ctx, "google")
		return oauthMsg{url: url, err: err}
	}
}

func (s *welcomeScreen) View(width int) string {
	var b strings.Builder

	b.WriteString(s.th.Title.Render("Train Smarter. Get Yolked."))
	b.WriteString("\n")
	b.WriteString(s.th.Subtitle.Render("Personalized workouts built around your level, your goals, and your gym."))
	b.WriteString("\n\n")

	for i, item := range welcomeItems {
		style := s.th.Card
		prefix := "  "
		if i == s.cursor {
			style = s.th.CardSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + item.label))
		b.WriteString("\n")
	}

	if s.oauthURL != "" {
		b.WriteString("\n")
		b.WriteString(s.th.Label.Render("Open this link in your browser to continue:"))
		b.WriteString("\n")
		b.WriteString(s.th.Subtitle.Render(s.oauthURL))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(s.th.Error.Render(s.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.th.Help.Render("↑/↓ select · enter confirm · q quit"))
	return b.String()
}
