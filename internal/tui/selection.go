package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/theme"
)

// selectionScreen is the shared model for the three single-choice wizard
// steps. Each step parameterizes it with its copy, its option set, and the
// Fields variant it produces. The selection starts empty even when the draft
// already holds a value from an earlier visit; form state is local to the
// screen instance.
type selectionScreen struct {
	th    theme.Theme
	draft onboarding.Draft

	step     onboarding.Step
	title    string
	subtitle string
	options  []onboarding.Option
	toFields func(id string) onboarding.Fields

	cursor   int
	selected string
	errs     onboarding.Errors
}

func newSelectionScreen(
	th theme.Theme,
	draft onboarding.Draft,
	step onboarding.Step,
	title, subtitle string,
	options []onboarding.Option,
	toFields func(id string) onboarding.Fields,
) *selectionScreen {
	return &selectionScreen{
		th:       th,
		draft:    draft,
		step:     step,
		title:    title,
		subtitle: subtitle,
		options:  options,
		toFields: toFields,
		errs:     onboarding.Errors{},
	}
}

func newFitnessLevelScreen(th theme.Theme, draft onboarding.Draft) *selectionScreen {
	return newSelectionScreen(th, draft,
		onboarding.StepFitnessLevel,
		"What's your fitness level?",
		"Be honest, we'll meet you where you are",
		onboarding.FitnessLevelOptions(),
		func(id string) onboarding.Fields {
			return onboarding.LevelFields{Level: onboarding.FitnessLevel(id)}
		})
}

func newGoalsScreen(th theme.Theme, draft onboarding.Draft) *selectionScreen {
	return newSelectionScreen(th, draft,
		onboarding.StepGoals,
		"What's your main goal?",
		"Your plan will be built around it",
		onboarding.GoalOptions(),
		func(id string) onboarding.Fields {
			return onboarding.GoalFields{Goal: onboarding.Goal(id)}
		})
}

func newGymTypeScreen(th theme.Theme, draft onboarding.Draft) *selectionScreen {
	return newSelectionScreen(th, draft,
		onboarding.StepGymType,
		"Where do you train?",
		"We'll match exercises to your equipment",
		onboarding.GymTypeOptions(),
		func(id string) onboarding.Fields {
			return onboarding.GymFields{Gym: onboarding.GymType(id)}
		})
}

func (s *selectionScreen) Init() tea.Cmd { return nil }

func (s *selectionScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch msgKey.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case " ":
		s.selected = s.options[s.cursor].ID
		s.errs = onboarding.Errors{}
	case "enter":
		if s.selected == "" {
			// Enter on an unpicked list means "pick what the cursor is on".
			s.selected = s.options[s.cursor].ID
		}
		return s.submit()
	case "esc":
		step, draft := s.step, s.draft
		return s, func() tea.Msg {
			return backMsg{from: step, draft: draft}
		}
	}
	return s, nil
}

func (s *selectionScreen) submit() (screenModel, tea.Cmd) {
	draft, errs := onboarding.Advance(s.draft, s.toFields(s.selected))
	if !errs.Valid() {
		s.errs = errs
		return s, nil
	}
	step := s.step
	return s, func() tea.Msg {
		return advanceMsg{from: step, draft: draft}
	}
}

func (s *selectionScreen) View(width int) string {
	var b strings.Builder

	b.WriteString(s.th.Title.Render(s.title))
	b.WriteString("\n")
	b.WriteString(s.th.Subtitle.Render(s.subtitle))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		style := s.th.Card
		if opt.ID == s.selected {
			style = s.th.CardSelected
		}
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		check := "( ) "
		if opt.ID == s.selected {
			check = "(•) "
		}
		line := marker + check + opt.Title + "\n" + marker + "    " + opt.Description
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	for _, msg := range s.errs {
		b.WriteString("\n")
		b.WriteString(s.th.Error.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.th.Help.Render("↑/↓ move · space select · enter continue · esc back"))
	return b.String()
}
