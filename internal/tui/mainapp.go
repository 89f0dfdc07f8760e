package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/theme"
)

// mainScreen is the post-onboarding tab shell. The tabs other than Profile
// are placeholders for the training features proper.
type mainScreen struct {
	th      theme.Theme
	client  api.Client
	profile *api.Profile

	tab        int
	signingOut bool
}

var mainTabs = []string{"Home", "Workouts", "Progress", "Inspiration", "Connect", "Profile"}

func newMainScreen(th theme.Theme, client api.Client, profile *api.Profile) *mainScreen {
	return &mainScreen{th: th, client: client, profile: profile}
}

func (s *mainScreen) Init() tea.Cmd { return nil }

func (s *mainScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.signingOut {
		return s, nil
	}

	switch msgKey.String() {
	case "tab", "right", "l":
		s.tab = (s.tab + 1) % len(mainTabs)
	case "shift+tab", "left", "h":
		s.tab = (s.tab + len(mainTabs) - 1) % len(mainTabs)
	case "s":
		if mainTabs[s.tab] == "Profile" {
			s.signingOut = true
			client := s.client
			return s, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return signOutDoneMsg{err: client.SignOut(ctx)}
			}
		}
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *mainScreen) View(width int) string {
	var b strings.Builder

	var tabs []string
	for i, name := range mainTabs {
		if i == s.tab {
			tabs = append(tabs, s.th.TabActive.Render(name))
		} else {
			tabs = append(tabs, s.th.TabInactive.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
	b.WriteString("\n\n")

	switch mainTabs[s.tab] {
	case "Profile":
		b.WriteString(s.viewProfile())
	case "Home":
		b.WriteString(s.th.Subtitle.Render("Today's workout will appear here."))
	case "Workouts":
		b.WriteString(s.th.Subtitle.Render("Browse programs and exercises."))
	case "Progress":
		b.WriteString(s.th.Subtitle.Render("Charts and personal records."))
	case "Inspiration":
		b.WriteString(s.th.Subtitle.Render("Form tips and athlete stories."))
	case "Connect":
		b.WriteString(s.th.Subtitle.Render("Find training partners."))
	}

	b.WriteString("\n\n")
	help := "tab switch · q quit"
	if mainTabs[s.tab] == "Profile" {
		help = "tab switch · s sign out · q quit"
	}
	b.WriteString(s.th.Help.Render(help))
	return b.String()
}

func (s *mainScreen) viewProfile() string {
	var b strings.Builder
	if s.signingOut {
		b.WriteString(s.th.Label.Render("Signing out..."))
		return b.String()
	}
	if s.profile == nil {
		b.WriteString(s.th.Subtitle.Render("Profile unavailable."))
		return b.String()
	}

	row := func(label string, value *string) {
		b.WriteString(s.th.Label.Render(label + ": "))
		if value != nil && *value != "" {
			b.WriteString(*value)
		} else {
			b.WriteString("not set")
		}
		b.WriteString("\n")
	}
	row("Name", joined(s.profile.FirstName, s.profile.LastName))
	row("Fitness level", s.profile.FitnessLevel)
	row("Primary goal", s.profile.PrimaryGoal)
	row("Gym type", s.profile.GymType)
	return b.String()
}

func joined(first, last *string) *string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, " ")
	return &full
}
