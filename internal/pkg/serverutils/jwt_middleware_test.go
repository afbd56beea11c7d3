package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func newAuthedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(c *fiber.Ctx) error {
		// Mirrors how controllers consume the middleware's output.
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestJwtMiddleware(t *testing.T) {
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "valid HS256 token",
			token:      signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "abc", "exp": exp}, secret),
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "HS512 variant rejected even with the right secret",
			token:      signToken(t, jwt.SigningMethodHS512, jwt.MapClaims{"user_id": "abc", "exp": exp}, secret),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			token:      signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "abc", "exp": exp}, "other"),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing user_id claim",
			token:      signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp}, secret),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "non-string user_id claim",
			token:      signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 42, "exp": exp}, secret),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "expired token",
			token:      signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "abc", "exp": time.Now().Add(-time.Hour).Unix()}, secret),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "no token at all",
			token:      "",
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	app := newAuthedApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
