package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yolked/yolked/internal/api"
	"github.com/yolked/yolked/internal/logbook"
	"github.com/yolked/yolked/internal/onboarding"
	"github.com/yolked/yolked/internal/theme"
)

const commitTimeout = 20 * time.Second

// successFrames is the one-time confirmation sequence shown after a commit
// lands. The last frame is the resting state.
var successFrames = []string{"·", "•", "◦", "○", "◎", "✓"}

const successFrameInterval = 90 * time.Millisecond

type commitState int

const (
	commitPending commitState = iota
	commitFailed
	commitSucceeded
)

// commitScreen is the terminal step: it persists the whole draft in a single
// write and shows pending, failure, or success. Failure keeps the draft
// intact so a retry sends the identical payload. Each attempt is numbered;
// a response from a superseded attempt is dropped.
type commitScreen struct {
	th     theme.Theme
	client api.Client
	log    *logbook.Logbook
	draft  onboarding.Draft

	state   commitState
	attempt int
	errMsg  string
	profile *api.Profile
	spin    spinner.Model
	frame   int
}

func newCommitScreen(th theme.Theme, client api.Client, lb *logbook.Logbook, draft onboarding.Draft) *commitScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Progress
	return &commitScreen{
		th:     th,
		client: client,
		log:    lb,
		draft:  draft,
		spin:   sp,
	}
}

func (s *commitScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, s.commitCmd())
}

// commitCmd issues one attempt. The payload is derived from the draft every
// time, so retries are byte-for-byte identical.
func (s *commitScreen) commitCmd() tea.Cmd {
	s.state = commitPending
	s.attempt++
	attempt := s.attempt
	client := s.client
	fields := api.ProfileFields{
		FirstName:    s.draft.FirstName,
		LastName:     s.draft.LastName,
		FitnessLevel: string(s.draft.FitnessLevel),
		PrimaryGoal:  string(s.draft.PrimaryGoal),
		GymType:      string(s.draft.GymType),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()
		profile, err := client.UpdateProfile(ctx, fields)
		return commitResultMsg{attempt: attempt, profile: profile, err: err}
	}
}

func nextSuccessFrame() tea.Cmd {
	return tea.Tick(successFrameInterval, func(time.Time) tea.Msg {
		return successFrameMsg{}
	})
}

func (s *commitScreen) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.state != commitPending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case commitResultMsg:
		if msg.attempt != s.attempt {
			// A retry is already in flight; this response is stale.
			return s, nil
		}
		if msg.err != nil {
			s.state = commitFailed
			s.errMsg = msg.err.Error()
			if s.log != nil {
				s.log.Error("onboarding commit failed: %s", s.errMsg)
			}
			return s, nil
		}
		s.state = commitSucceeded
		s.profile = msg.profile
		s.frame = 0
		if s.log != nil {
			s.log.Info("onboarding committed for %s", msg.profile.UserID)
		}
		return s, nextSuccessFrame()

	case successFrameMsg:
		if s.state != commitSucceeded || s.frame >= len(successFrames)-1 {
			return s, nil
		}
		s.frame++
		if s.frame == len(successFrames)-1 {
			return s, nil
		}
		return s, nextSuccessFrame()

	case tea.KeyMsg:
		switch s.state {
		case commitFailed:
			switch msg.String() {
			case "r", "enter":
				return s, tea.Batch(s.spin.Tick, s.commitCmd())
			case "esc":
				draft := s.draft
				return s, func() tea.Msg {
					return backMsg{from: onboarding.StepComplete, draft: draft}
				}
			}
		case commitSucceeded:
			if msg.String() == "enter" {
				profile := s.profile
				return s, func() tea.Msg {
					return startTrainingMsg{profile: profile}
				}
			}
		}
	}
	return s, nil
}

func (s *commitScreen) View(width int) string {
	var b strings.Builder

	switch s.state {
	case commitPending:
		b.WriteString(s.th.Title.Render("Setting up your profile"))
		b.WriteString("\n\n")
		b.WriteString(s.spin.View())
		b.WriteString(s.th.Label.Render(" Saving your preferences..."))

	case commitFailed:
		b.WriteString(s.th.Title.Render("Something went wrong"))
		b.WriteString("\n\n")
		b.WriteString(s.th.Error.Render(s.errMsg))
		b.WriteString("\n\n")
		b.WriteString(s.th.Button.Render("Try Again"))
		b.WriteString("\n\n")
		b.WriteString(s.th.Help.Render("r retry · esc back"))

	case commitSucceeded:
		b.WriteString(s.th.Success.Render(successFrames[s.frame] + " You're all set!"))
		b.WriteString("\n\n")
		name := strings.TrimSpace(s.draft.FirstName)
		if name != "" {
			b.WriteString(s.th.Subtitle.Render("Welcome to Yolked, " + name + ". Your plan is ready."))
		} else {
			b.WriteString(s.th.Subtitle.Render("Welcome to Yolked. Your plan is ready."))
		}
		b.WriteString("\n\n")
		b.WriteString(s.th.Button.Render("Start Training"))
		b.WriteString("\n\n")
		b.WriteString(s.th.Help.Render("enter start training"))
	}
	return b.String()
}
