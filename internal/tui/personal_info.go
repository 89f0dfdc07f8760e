package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/theme"
)

// personalInfoScreen is the first wizard step: first and last name. The
// inputs start empty even when the draft already holds names from an earlier
// visit; form state is local to the screen instance.
type personalInfoScreen struct {
	th    theme.Theme
	draft onboarding.Draft

	inputs []textinput.Model
	focus  int
	errs   onboarding.Errors
}

func newPersonalInfoScreen(th theme.Theme, draft onboarding.Draft) *personalInfoScreen {
	first := textinput.New()
	first.Placeholder = "First Name"
	first.CharLimit = 64
	first.Focus()

	last := textinput.New()
	last.Placeholder = "Last Name"
	last.CharLimit = 64

	return &personalInfoScreen{
		th:     th,
		draft:  draft,
		inputs: []textinput.Model{first, last},
		errs:   onboarding.Errors{},
	}
}

func (s *personalInfoScreen) Init() tea.Cmd { return textinput.Blink }

func (s *personalInfoScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
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
			draft := s.draft
			return s, func() tea.Msg {
				return backMsg{from: onboarding.StepPersonalInfo, draft: draft}
			}
		}
	}

	var cmds []tea.Cmd
	for i := range s.inputs {
		var cmd tea.Cmd
		s.inputs[i], cmd = s.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

func (s *personalInfoScreen) setFocus(idx int) {
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

func (s *personalInfoScreen) submit() (screenModel, tea.Cmd) {
	fields := onboarding.NameFields{
		FirstName: s.inputs[0].Value(),
		LastName:  s.inputs[1].Value(),
	}
	draft, errs := onboarding.Advance(s.draft, fields)
	if !errs.Valid() {
		s.errs = errs
		return s, nil
	}
	return s, func() tea.Msg {
		return advanceMsg{from: onboarding.StepPersonalInfo, draft: draft}
	}
}

func (s *personalInfoScreen) View(width int) string {
	var b strings.Builder

	b.WriteString(s.th.Title.Render("Tell us about yourself"))
	b.WriteString("\n")
	b.WriteString(s.th.Subtitle.Render("We'll use this to personalize your experience"))
	b.WriteString("\n\n")

	fields := []string{"firstName", "lastName"}
	for i, input := range s.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
		if msg, ok := s.errs[fields[i]]; ok {
			b.WriteString(s.th.Error.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.th.Help.Render("tab next field · enter continue · esc back"))
	return b.String()
}
