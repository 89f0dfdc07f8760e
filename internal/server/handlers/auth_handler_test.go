package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yolked/yolked/internal/server/middleware"
	"github.com/yolked/yolked/internal/server/models"
	"github.com/yolked/yolked/pkg/utils"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.User{}}
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// stubRegistrar mimics the transactional user+profile insert: both records
// land, or neither does.
type stubRegistrar struct {
	repo      *stubUserRepo
	calls     int
	lastFirst string
	lastLast  string
	err       error
}

func (s *stubRegistrar) CreateUserWithProfile(ctx context.Context, user *models.User, firstName, lastName string) error {
	s.calls++
	s.lastFirst = firstName
	s.lastLast = lastName
	if s.err != nil {
		return s.err
	}
	return s.repo.CreateUser(ctx, user)
}

func newAuthTestApp(userRepo *stubUserRepo, reg *stubRegistrar) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(userRepo, reg, testSecret,
		"https://accounts.google.com/o/oauth2/v2/auth",
		"http://localhost:8080/api/auth/callback")

	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/oauth/:provider", h.OAuthURL)
	auth.Get("/me", middleware.AuthRequired(testSecret), h.Me)
	auth.Post("/logout", middleware.AuthRequired(testSecret), h.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestRegisterCreatesAccountAtomically(t *testing.T) {
	userRepo := newStubUserRepo()
	reg := &stubRegistrar{repo: userRepo}
	app := newAuthTestApp(userRepo, reg)

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email":    "Lifter@Example.com",
		"password": "password1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["token"] == "" || body["token"] == nil {
		t.Fatalf("no token in response: %v", body)
	}
	if _, ok := userRepo.users["lifter@example.com"]; !ok {
		t.Fatalf("email not normalized: %v", userRepo.users)
	}
	if reg.calls != 1 {
		t.Fatalf("registrar calls = %d, want 1", reg.calls)
	}
}

func TestRegisterStoresSignupMeta(t *testing.T) {
	userRepo := newStubUserRepo()
	reg := &stubRegistrar{repo: userRepo}
	app := newAuthTestApp(userRepo, reg)

	resp := postJSON(t, app, "/api/auth/register", map[string]any{
		"email":    "a@b.com",
		"password": "password1",
		"meta":     map[string]string{"first_name": " Ada ", "last_name": "Ng"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if reg.lastFirst != "Ada" || reg.lastLast != "Ng" {
		t.Fatalf("meta names = %q %q, want Ada Ng", reg.lastFirst, reg.lastLast)
	}
}

func TestRegisterFailureIssuesNoToken(t *testing.T) {
	userRepo := newStubUserRepo()
	reg := &stubRegistrar{repo: userRepo, err: errors.New("insert failed")}
	app := newAuthTestApp(userRepo, reg)

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email":    "a@b.com",
		"password": "password1",
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if _, ok := body["token"]; ok {
		t.Fatalf("token issued for failed registration: %v", body)
	}
	if len(userRepo.users) != 0 {
		t.Fatalf("user persisted despite failed registration: %v", userRepo.users)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	userRepo := newStubUserRepo()
	app := newAuthTestApp(userRepo, &stubRegistrar{repo: userRepo})

	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email":    "a@b.com",
		"password": "short",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Password must be at least 8 characters" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestRegisterConflictOnDuplicateEmail(t *testing.T) {
	userRepo := newStubUserRepo()
	app := newAuthTestApp(userRepo, &stubRegistrar{repo: userRepo})

	postJSON(t, app, "/api/auth/register", map[string]string{
		"email": "a@b.com", "password": "password1",
	})
	resp := postJSON(t, app, "/api/auth/register", map[string]string{
		"email": "a@b.com", "password": "password1",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	userRepo := newStubUserRepo()
	app := newAuthTestApp(userRepo, &stubRegistrar{repo: userRepo})

	postJSON(t, app, "/api/auth/register", map[string]string{
		"email": "a@b.com", "password": "password1",
	})

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "a@b.com", "password": "password1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "a@b.com", "password": "wrongpassword",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "Invalid email or password" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestMeRequiresValidToken(t *testing.T) {
	userRepo := newStubUserRepo()
	app := newAuthTestApp(userRepo, &stubRegistrar{repo: userRepo})

	user := &models.User{Email: "a@b.com", PasswordHash: "x", AuthProvider: "email"}
	_ = userRepo.CreateUser(context.Background(), user)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", resp.StatusCode)
	}

	token, err := utils.GenerateToken(user.ID.String(), testSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	userBody, ok := body["user"].(map[string]any)
	if !ok || userBody["email"] != "a@b.com" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestOAuthURLOnlySupportsGoogle(t *testing.T) {
	userRepo := newStubUserRepo()
	app := newAuthTestApp(userRepo, &stubRegistrar{repo: userRepo})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	url, _ := body["url"].(string)
	if url == "" {
		t.Fatalf("no url in response: %v", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/oauth/facebook", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
