// internal/onboarding/validate.go
//
// Per-step, per-field validation. Results map field name to a human-readable
// message; an empty map means the step may advance. Messages are exactly what
// the screens render inline, so keep them user-facing.

package onboarding

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps field name to an inline error message.
type Errors map[string]string

// Valid reports whether the step may advance.
func (e Errors) Valid() bool { return len(e) == 0 }

// ValidateName checks the personal-info step. Names need at least two
// characters after trimming surrounding whitespace.
func ValidateName(firstName, lastName string) Errors {
	errs := Errors{}
	switch trimmed := strings.TrimSpace(firstName); {
	case trimmed == "":
		errs["firstName"] = "First name is required"
	case utf8.RuneCountInString(trimmed) < 2:
		errs["firstName"] = "First name must be at least 2 characters"
	}
	switch trimmed := strings.TrimSpace(lastName); {
	case trimmed == "":
		errs["lastName"] = "Last name is required"
	case utf8.RuneCountInString(trimmed) < 2:
		errs["lastName"] = "Last name must be at least 2 characters"
	}
	return errs
}

// ValidateRegistration checks the sign-up gate: email shape, password length,
// and the confirmation match.
func ValidateRegistration(email, password, confirmPassword string) Errors {
	errs := validateEmail(email)
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < 8:
		errs["password"] = "Password must be at least 8 characters"
	}
	switch {
	case confirmPassword == "":
		errs["confirmPassword"] = "Please confirm your password"
	case password != confirmPassword:
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// ValidateLogin checks the sign-in gate. Only presence and email shape are
// checked locally; the service decides whether the credentials are right.
func ValidateLogin(email, password string) Errors {
	errs := validateEmail(email)
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateSelection checks a selection step: exactly one choice from the
// step's fixed option set.
func ValidateSelection(field, selected string, options []Option) Errors {
	errs := Errors{}
	if selected == "" {
		errs[field] = "Please select an option"
		return errs
	}
	for _, opt := range options {
		if opt.ID == selected {
			return errs
		}
	}
	errs[field] = "Please select an option"
	return errs
}

func validateEmail(email string) Errors {
	errs := Errors{}
	switch trimmed := strings.TrimSpace(email); {
	case trimmed == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(trimmed):
		errs["email"] = "Please enter a valid email"
	}
	return errs
}

// Advance is the forward-transition contract shared by the wizard steps:
// validate the step's fields and, only when they pass, extend the draft.
// On failure the original draft comes back untouched alongside the errors.
func Advance(d Draft, f Fields) (Draft, Errors) {
	if errs := validateFields(f); !errs.Valid() {
		return d, errs
	}
	return Extend(d, f), Errors{}
}

func validateFields(f Fields) Errors {
	switch v := f.(type) {
	case NameFields:
		return ValidateName(v.FirstName, v.LastName)
	case LevelFields:
		return ValidateSelection("fitnessLevel", string(v.Level), FitnessLevelOptions())
	case GoalFields:
		return ValidateSelection("primaryGoal", string(v.Goal), GoalOptions())
	case GymFields:
		return ValidateSelection("gymType", string(v.Gym), GymTypeOptions())
	default:
		return Errors{}
	}
}
