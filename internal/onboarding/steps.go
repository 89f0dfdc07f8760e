// internal/onboarding/steps.go
//
// The fixed forward order of the wizard. The welcome and account screens are
// entry gates that precede the wizard proper but still count toward the
// progress display, matching the seven-screen flow the app ships.

package onboarding

// Step identifies one screen in the onboarding sequence, 1-based.
type Step int

const (
	StepWelcome Step = iota + 1
	StepAccount      // register or login
	StepPersonalInfo
	StepFitnessLevel
	StepGoals
	StepGymType
	StepComplete
)

var stepOrder = [...]Step{
	StepWelcome,
	StepAccount,
	StepPersonalInfo,
	StepFitnessLevel,
	StepGoals,
	StepGymType,
	StepComplete,
}

// TotalSteps is the fixed length of the flow.
const TotalSteps = len(stepOrder)

// FirstWizardStep is where the session resolver lands a signed-in user whose
// profile is not yet complete. There is no per-field resume; the wizard
// always restarts here with an empty draft.
const FirstWizardStep = StepPersonalInfo

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepAccount:
		return "account"
	case StepPersonalInfo:
		return "personal-info"
	case StepFitnessLevel:
		return "fitness-level"
	case StepGoals:
		return "goals"
	case StepGymType:
		return "gym-type"
	case StepComplete:
		return "complete"
	}
	return "unknown"
}

// Position reports the step's 1-based position and the flow total for the
// "N of M" progress display.
func (s Step) Position() (int, int) {
	for i, step := range stepOrder {
		if step == s {
			return i + 1, TotalSteps
		}
	}
	return TotalSteps, TotalSteps
}

// Next returns the following step. The last step has no successor and
// returns itself.
func (s Step) Next() Step {
	pos, total := s.Position()
	if pos >= total {
		return s
	}
	return stepOrder[pos]
}

// Prev returns the preceding step. Going back never validates and clamps at
// the first step.
func (s Step) Prev() Step {
	pos, _ := s.Position()
	if pos <= 1 {
		return stepOrder[0]
	}
	return stepOrder[pos-2]
}

// Option is one entry of a selection step's fixed choice set.
type Option struct {
	ID          string
	Title       string
	Description string
}

// FitnessLevelOptions is the choice set for the fitness-level step.
func FitnessLevelOptions() []Option {
	return []Option{
		{ID: string(LevelBeginner), Title: "Beginner", Description: "New or returning to fitness"},
		{ID: string(LevelIntermediate), Title: "Intermediate", Description: "6 months to 2 years experience"},
		{ID: string(LevelAdvanced), Title: "Advanced", Description: "2+ years consistent training"},
	}
}

// GoalOptions is the choice set for the goals step.
func GoalOptions() []Option {
	return []Option{
		{ID: string(GoalStrength), Title: "Get Stronger", Description: "Focus on lifting heavier weights"},
		{ID: string(GoalMuscle), Title: "Build Muscle", Description: "Increase size and definition"},
		{ID: string(GoalLoseWeight), Title: "Lose Weight", Description: "Burn fat and get leaner"},
		{ID: string(GoalGeneral), Title: "General Fitness", Description: "Overall health and wellness"},
	}
}

// GymTypeOptions is the choice set for the gym-type step.
func GymTypeOptions() []Option {
	return []Option{
		{ID: string(GymCommercial), Title: "Commercial Gym", Description: "Full gym with machines and free weights"},
		{ID: string(GymHome), Title: "Home/Garage", Description: "Limited equipment at home"},
		{ID: string(GymNone), Title: "No Equipment", Description: "Bodyweight training only"},
	}
}
