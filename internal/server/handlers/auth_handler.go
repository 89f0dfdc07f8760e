package handlers

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yolked/yolked/internal/server/models"
	"github.com/yolked/yolked/pkg/utils"
)

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// registrar creates the user and its profile row atomically, so no account
// can exist without a profile row for onboarding to update.
type registrar interface {
	CreateUserWithProfile(ctx context.Context, user *models.User, firstName, lastName string) error
}

type AuthHandler struct {
	userRepo          userStore
	registrar         registrar
	jwtSecret         string
	googleAuthBaseURL string
	oauthRedirectURL  string
}

func NewAuthHandler(userRepo userStore, reg registrar, jwtSecret, googleAuthBaseURL, oauthRedirectURL string) *AuthHandler {
	return &AuthHandler{
		userRepo:          userRepo,
		registrar:         reg,
		jwtSecret:         jwtSecret,
		googleAuthBaseURL: googleAuthBaseURL,
		oauthRedirectURL:  oauthRedirectURL,
	}
}

type signUpMeta struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type registerRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Meta     *signUpMeta `json:"meta"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	existing, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		AuthProvider: "email",
	}
	var firstName, lastName string
	if req.Meta != nil {
		firstName = strings.TrimSpace(req.Meta.FirstName)
		lastName = strings.TrimSpace(req.Meta.LastName)
	}
	if err := h.registrar.CreateUserWithProfile(c.Context(), user, firstName, lastName); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	token, err := utils.GenerateToken(user.ID.String(), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateToken(user.ID.String(), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user": user})
}

// OAuthURL hands back the provider authorization URL. The browser dance and
// the callback exchange happen outside this API; clients poll /me afterwards.
func (h *AuthHandler) OAuthURL(c *fiber.Ctx) error {
	provider := c.Params("provider")
	if provider != "google" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported provider"})
	}

	q := url.Values{}
	q.Set("redirect_uri", h.oauthRedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")

	return c.JSON(fiber.Map{"url": h.googleAuthBaseURL + "?" + q.Encode()})
}

// Logout is stateless on the server; tokens expire on their own. The
// endpoint exists so clients have a single place to hang session teardown.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id")
	}
	return uuid.Parse(raw)
}
