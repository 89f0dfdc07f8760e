package onboarding

import "testing"

func TestExtendReturnsNewDraft(t *testing.T) {
	empty := Draft{}
	withName := Extend(empty, NameFields{FirstName: "Ada", LastName: "Lovelace"})

	if empty.FirstName != "" {
		t.Fatalf("Extend must not mutate its input, got %q", empty.FirstName)
	}
	if withName.FirstName != "Ada" || withName.LastName != "Lovelace" {
		t.Fatalf("unexpected draft after name step: %+v", withName)
	}
}

func TestExtendTrimsNames(t *testing.T) {
	d := Extend(Draft{}, NameFields{FirstName: "  Ada ", LastName: " Lovelace  "})
	if d.FirstName != "Ada" || d.LastName != "Lovelace" {
		t.Fatalf("names must be stored trimmed, got %q %q", d.FirstName, d.LastName)
	}
}

func TestDraftGrowsMonotonically(t *testing.T) {
	d := Draft{}
	d = Extend(d, CredentialFields{Email: "a@b.com", Method: AuthEmail})
	d = Extend(d, NameFields{FirstName: "Ada", LastName: "Lovelace"})
	d = Extend(d, LevelFields{Level: LevelBeginner})
	d = Extend(d, GoalFields{Goal: GoalStrength})
	d = Extend(d, GymFields{Gym: GymHome})

	want := Draft{
		Email:        "a@b.com",
		AuthMethod:   AuthEmail,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		FitnessLevel: LevelBeginner,
		PrimaryGoal:  GoalStrength,
		GymType:      GymHome,
	}
	if d != want {
		t.Fatalf("accumulated draft mismatch:\n got %+v\nwant %+v", d, want)
	}
}

func TestLaterStepsNeverDropEarlierFields(t *testing.T) {
	d := Extend(Draft{}, NameFields{FirstName: "Ada", LastName: "Lovelace"})
	d = Extend(d, LevelFields{Level: LevelAdvanced})
	if d.FirstName != "Ada" || d.LastName != "Lovelace" {
		t.Fatalf("level step must not touch name fields: %+v", d)
	}
	d = Extend(d, GymFields{Gym: GymNone})
	if d.FitnessLevel != LevelAdvanced {
		t.Fatalf("gym step must not touch fitness level: %+v", d)
	}
}

func TestResuppliedKeyWins(t *testing.T) {
	d := Extend(Draft{}, LevelFields{Level: LevelBeginner})
	d = Extend(d, LevelFields{Level: LevelAdvanced})
	if d.FitnessLevel != LevelAdvanced {
		t.Fatalf("re-supplied field must win, got %q", d.FitnessLevel)
	}
}

func TestExtendNilFieldsIsIdentity(t *testing.T) {
	d := Draft{FirstName: "Ada"}
	if got := Extend(d, nil); got != d {
		t.Fatalf("Extend with nil fields changed the draft: %+v", got)
	}
}

func TestCredentialFieldsNormalizeEmail(t *testing.T) {
	d := Extend(Draft{}, CredentialFields{Email: " Ada@Example.COM ", Method: AuthGoogle})
	if d.Email != "ada@example.com" {
		t.Fatalf("email must be lowercased and trimmed, got %q", d.Email)
	}
	if d.AuthMethod != AuthGoogle {
		t.Fatalf("auth method not recorded: %q", d.AuthMethod)
	}
}
