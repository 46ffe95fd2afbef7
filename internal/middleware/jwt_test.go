package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/reqctx"
	"portfolio/internal/utils"
)

const testSecret = "test-secret"

func protectedEndpoint(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := reqctx.GetAdminID(r.Context()); !ok || id != 42 {
			t.Errorf("admin id in context = %v (%v), want 42", id, ok)
		}
		if name, ok := reqctx.GetUsername(r.Context()); !ok || name != "admin" {
			t.Errorf("username in context = %q (%v), want admin", name, ok)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	called := false
	handler := JWTAuth(testSecret)(protectedEndpoint(t, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran without a token")
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	called := false
	handler := JWTAuth(testSecret)(protectedEndpoint(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran with a non-bearer header")
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, 42, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	called := false
	handler := JWTAuth(testSecret)(protectedEndpoint(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran with an expired token")
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, 42, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	called := false
	handler := JWTAuth(testSecret)(protectedEndpoint(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("handler did not run with a valid token")
	}
}

func TestJWTAuthPreflightPassthrough(t *testing.T) {
	called := false
	handler := JWTAuth(testSecret)(protectedEndpoint(t, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/projects", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if called {
		t.Error("handler ran for a preflight request")
	}
}
