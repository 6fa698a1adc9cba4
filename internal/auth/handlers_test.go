package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geosohn7/FunRun/internal/user"

	"github.com/gofiber/fiber/v2"
)

func loginApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), NewService("secret", user.NewService(user.NewMemoryStore())))
	return app
}

func TestLoginHandler(t *testing.T) {
	app := loginApp()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{"nickname":"runner"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("login: %v status %d", err, resp.StatusCode)
	}

	var body struct {
		User   user.User     `json:"user"`
		Tokens TokenResponse `json:"tokens"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Nickname != "runner" || body.User.Tier != user.TierBronze {
		t.Fatalf("unexpected user: %+v", body.User)
	}
	if body.Tokens.AccessToken == "" {
		t.Fatalf("expected access token")
	}
}

func TestLoginHandlerMissingNickname(t *testing.T) {
	app := loginApp()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRefreshHandler(t *testing.T) {
	svc := NewService("secret", user.NewService(user.NewMemoryStore()))
	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), svc)

	tokens, err := svc.GenerateTokens("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	payload, _ := json.Marshal(RefreshRequest{RefreshToken: tokens.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: %v status %d", err, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader([]byte(`{"refresh_token":"bogus"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bogus token, got %d", resp.StatusCode)
	}
}

func TestVerifyHandler(t *testing.T) {
	svc := NewService("secret", user.NewService(user.NewMemoryStore()))
	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), svc)

	tokens, _ := svc.GenerateTokens("user-1")
	req := httptest.NewRequest(http.MethodGet, "/auth/jwt/verify", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("verify: %v status %d", err, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/jwt/verify", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}
