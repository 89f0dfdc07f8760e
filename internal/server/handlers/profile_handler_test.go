package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yolked/yolked/internal/server/middleware"
	"github.com/yolked/yolked/internal/server/models"
	"github.com/yolked/yolked/internal/server/repository"
	"github.com/yolked/yolked/pkg/utils"
)

type stubProfileRepo struct {
	profile       *models.Profile
	lastOnboarded repository.OnboardingInput
	calls         int
}

func (s *stubProfileRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.Profile, error) {
	if s.profile == nil {
		return nil, pgx.ErrNoRows
	}
	return s.profile, nil
}

func (s *stubProfileRepo) CompleteOnboarding(_ context.Context, userID uuid.UUID, req repository.OnboardingInput) (*models.Profile, error) {
	s.calls++
	s.lastOnboarded = req
	if s.profile == nil {
		s.profile = &models.Profile{ID: uuid.New(), UserID: userID}
	}
	s.profile.FirstName = &req.FirstName
	s.profile.LastName = &req.LastName
	s.profile.FitnessLevel = &req.FitnessLevel
	s.profile.PrimaryGoal = &req.PrimaryGoal
	s.profile.GymType = &req.GymType
	s.profile.OnboardingCompleted = true
	return s.profile, nil
}

func newProfileTestApp(repo *stubProfileRepo) (*fiber.App, string) {
	app := fiber.New()
	h := NewProfileHandler(repo)

	protected := app.Group("/api/v1", middleware.AuthRequired(testSecret))
	protected.Get("/profile", h.GetProfile)
	protected.Put("/profile/onboarding", h.Onboarding)

	token, _ := utils.GenerateToken(uuid.NewString(), testSecret)
	return app, token
}

func putJSON(t *testing.T, app *fiber.App, path, token string, body any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func validOnboardingBody() map[string]string {
	return map[string]string{
		"first_name":    "Ada",
		"last_name":     "Ng",
		"fitness_level": "beginner",
		"primary_goal":  "strength",
		"gym_type":      "home",
	}
}

func TestOnboardingCompletesProfileInOneCall(t *testing.T) {
	repo := &stubProfileRepo{}
	app, token := newProfileTestApp(repo)

	resp := putJSON(t, app, "/api/v1/profile/onboarding", token, validOnboardingBody())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if repo.calls != 1 {
		t.Fatalf("repo calls = %d, want 1", repo.calls)
	}
	if !repo.profile.OnboardingCompleted {
		t.Fatalf("onboarding_completed not set")
	}

	body := decodeBody(t, resp)
	profile, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("no profile in response: %v", body)
	}
	if profile["onboarding_completed"] != true {
		t.Fatalf("response flag = %v", profile["onboarding_completed"])
	}
}

func TestOnboardingValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr string
	}{
		{"short first name", func(m map[string]string) { m["first_name"] = "A" },
			"First name must be at least 2 characters"},
		{"single multibyte rune first name", func(m map[string]string) { m["first_name"] = "É" },
			"First name must be at least 2 characters"},
		{"short last name", func(m map[string]string) { m["last_name"] = " " },
			"Last name must be at least 2 characters"},
		{"bad level", func(m map[string]string) { m["fitness_level"] = "elite" },
			"Invalid fitness level"},
		{"bad goal", func(m map[string]string) { m["primary_goal"] = "cardio" },
			"Invalid primary goal"},
		{"bad gym", func(m map[string]string) { m["gym_type"] = "outdoor" },
			"Invalid gym type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubProfileRepo{}
			app, token := newProfileTestApp(repo)

			body := validOnboardingBody()
			tc.mutate(body)
			resp := putJSON(t, app, "/api/v1/profile/onboarding", token, body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			got := decodeBody(t, resp)
			if got["error"] != tc.wantErr {
				t.Fatalf("error = %v, want %q", got["error"], tc.wantErr)
			}
			if repo.calls != 0 {
				t.Fatalf("repo called on invalid input")
			}
		})
	}
}

func TestGetProfileNotFound(t *testing.T) {
	app, token := newProfileTestApp(&stubProfileRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetProfileAfterOnboarding(t *testing.T) {
	repo := &stubProfileRepo{}
	app, token := newProfileTestApp(repo)

	putJSON(t, app, "/api/v1/profile/onboarding", token, validOnboardingBody())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	profile, _ := body["profile"].(map[string]any)
	if profile["first_name"] != "Ada" || profile["gym_type"] != "home" {
		t.Fatalf("unexpected profile: %v", profile)
	}
}
