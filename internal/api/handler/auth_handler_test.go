package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/api/middleware"
	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

// stubAuthService records the last call and replies with canned results.
type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error
	changeErr      error
	resetErr       error

	lastChangeUserID int64
}

func (s *stubAuthService) Register(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) ChangePassword(_ context.Context, userID int64, _, _ string) error {
	s.lastChangeUserID = userID
	return s.changeErr
}

func (s *stubAuthService) ResetPasswordByIdentity(_ context.Context, _, _, _ string) error {
	return s.resetErr
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleAuthResult() *ports.AuthResult {
	return &ports.AuthResult{
		Token: "signed-token",
		User: &domain.User{
			ID:    42,
			Name:  "Alice",
			Email: "alice@example.com",
			Role:  domain.RoleCustomer,
		},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerResult: sampleAuthResult()}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret","birthdate":"15/08/1990"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["message"] != "user registered" {
		t.Errorf("message: got %q", resp["message"])
	}
	if resp["user_id"] != float64(42) {
		t.Errorf("user_id: got %v", resp["user_id"])
	}
	if resp["token"] != "signed-token" {
		t.Errorf("token: got %v", resp["token"])
	}
}

func TestAuthHandler_Register_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing fields", `{"email":"a@b.com"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"123","birthdate":"01/01/2000"}`},
		{"bad email", `{"name":"A","email":"nope","password":"123456","birthdate":"01/01/2000"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/register", tt.body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})

	c, _ := newAuthTestContext(t, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret","birthdate":"15/08/1990"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginResult: sampleAuthResult()})

	c, rec := newAuthTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["message"] != "login successful" {
		t.Errorf("message: got %q", resp["message"])
	}
	if resp["token"] != "signed-token" {
		t.Errorf("token: got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newAuthTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(t, http.MethodPost, "/forgot-password",
		`{"email":"alice@example.com","birthdate":"15/08/1990","new_password":"recovered"}`)
	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["message"] != "password updated" || resp["updated"] != true {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestAuthHandler_ForgotPassword_RecoveryFailed(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{resetErr: domain.ErrRecoveryFailed})

	c, _ := newAuthTestContext(t, http.MethodPost, "/forgot-password",
		`{"email":"ghost@example.com","birthdate":"15/08/1990","new_password":"recovered"}`)
	if err := h.ForgotPassword(c); !errors.Is(err, domain.ErrRecoveryFailed) {
		t.Fatalf("expected ErrRecoveryFailed to propagate, got %v", err)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/change-password",
		`{"current_password":"old-pass","new_password":"new-pass"}`)
	c.Set(middleware.UserIDKey, int64(42))
	c.Set(middleware.RoleKey, domain.RoleCustomer)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if svc.lastChangeUserID != 42 {
		t.Errorf("service called with user id %d, want 42", svc.lastChangeUserID)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["message"] != "password changed" || resp["changed"] != true {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestAuthHandler_ChangePassword_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthTestContext(t, http.MethodPost, "/change-password",
		`{"current_password":"old-pass","new_password":"new-pass"}`)

	err := h.ChangePassword(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
