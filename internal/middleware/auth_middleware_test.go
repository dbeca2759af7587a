//go:build !integration

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"quickBite/pkg/utils"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeValidator struct {
	userID string
	err    error
}

func (f *fakeValidator) ValidateTokenFromRedis(_ context.Context, _ string) (string, error) {
	return f.userID, f.err
}

func runGate(t *testing.T, gate echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool, uint) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	var gotUserID uint
	handler := gate(func(c echo.Context) error {
		nextCalled = true
		gotUserID, _ = c.Get("user_id").(uint)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	return rec, nextCalled, gotUserID
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	utils.InitJWT("test-secret")

	rec, nextCalled, _ := runGate(t, AuthMiddleware(), "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if nextCalled {
		t.Error("handler must not run without a token")
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	utils.InitJWT("test-secret")

	rec, nextCalled, _ := runGate(t, AuthMiddleware(), "Token abc")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if nextCalled {
		t.Error("handler must not run with a malformed header")
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("7", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	rec, nextCalled, userID := runGate(t, AuthMiddleware(), "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !nextCalled {
		t.Fatal("handler did not run")
	}
	if userID != 7 {
		t.Errorf("expected user_id 7 in context, got %d", userID)
	}
}

func TestAuthMiddlewareWithRedisSessionMissing(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("7", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	gate := AuthMiddlewareWithRedis(&fakeValidator{err: errors.New("session not found or expired")})
	rec, nextCalled, _ := runGate(t, gate, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if nextCalled {
		t.Error("handler must not run without a live session")
	}
}

func TestAuthMiddlewareWithRedisUserMismatch(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("7", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	gate := AuthMiddlewareWithRedis(&fakeValidator{userID: "8"})
	rec, nextCalled, _ := runGate(t, gate, "Bearer "+token)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if nextCalled {
		t.Error("handler must not run on a hijacked session")
	}
}

func TestAuthMiddlewareWithRedisValidSession(t *testing.T) {
	utils.InitJWT("test-secret")

	token, err := utils.GenerateJWT("7", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	gate := AuthMiddlewareWithRedis(&fakeValidator{userID: "7"})
	rec, nextCalled, userID := runGate(t, gate, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !nextCalled || userID != 7 {
		t.Errorf("expected handler to run as user 7, ran=%v user=%d", nextCalled, userID)
	}
}
