package handler

import (
	"net/http"
	"testing"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

func TestSignUp(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)

	w := doJSON(t, r, http.MethodPost, "/signup", model.SignUpRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", w.Code, w.Body.String())
	}

	var user model.UserResponse
	env := decodeEnvelope(t, w, &user)
	if !env.Success {
		t.Error("Success = false")
	}
	if user.Email != "jane@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)
	req := model.SignUpRequest{Email: "jane@example.com", Password: "secret123"}

	if w := doJSON(t, r, http.MethodPost, "/signup", req); w.Code != http.StatusCreated {
		t.Fatalf("first signup status = %d", w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/signup", req)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", w.Code)
	}
}

func TestSignUpValidation(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)

	tests := []model.SignUpRequest{
		{Email: "not-an-email", Password: "secret123"},
		{Email: "jane@example.com", Password: "short"},
		{},
	}
	for _, req := range tests {
		if w := doJSON(t, r, http.MethodPost, "/signup", req); w.Code != http.StatusBadRequest {
			t.Errorf("signup %+v status = %d, want 400", req, w.Code)
		}
	}
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)

	signup := model.SignUpRequest{Email: "jane@example.com", Password: "secret123"}
	if w := doJSON(t, r, http.MethodPost, "/signup", signup); w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/login", model.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d\nbody: %s", w.Code, w.Body.String())
	}

	var login model.LoginResponse
	decodeEnvelope(t, w, &login)
	if login.AccessToken == "" {
		t.Error("empty access token")
	}
	claims, err := h.TokenMaker.VerifyToken(login.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("token email = %q", claims.Email)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)

	signup := model.SignUpRequest{Email: "jane@example.com", Password: "secret123"}
	if w := doJSON(t, r, http.MethodPost, "/signup", signup); w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d", w.Code)
	}

	wrongPassword := model.LoginRequest{Email: "jane@example.com", Password: "wrong-password"}
	if w := doJSON(t, r, http.MethodPost, "/login", wrongPassword); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}

	unknownUser := model.LoginRequest{Email: "nobody@example.com", Password: "secret123"}
	if w := doJSON(t, r, http.MethodPost, "/login", unknownUser); w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user status = %d, want 401", w.Code)
	}
}

func TestMeRequiresAuth(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h, nil)

	w := doJSON(t, r, http.MethodGet, "/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
