package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterIssuesTokenForCreatedUser(t *testing.T) {
	e := newEnv(t)

	w, resp := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", w.Code, w.Body.String())
	}

	d := data(t, resp)
	tok, _ := d["token"].(string)
	if tok == "" {
		t.Fatal("no token in register response")
	}
	claims, err := e.jwt.Parse(tok)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	user, _ := d["user"].(map[string]any)
	if user == nil {
		t.Fatalf("no user in register response: %v", d)
	}
	if id, _ := user["id"].(float64); int64(id) != claims.UserID {
		t.Fatalf("token subject %d does not match created user %v", claims.UserID, user["id"])
	}
	if claims.Role != "user" {
		t.Fatalf("unexpected role in token: %q", claims.Role)
	}
	if _, ok := user["password"]; ok {
		t.Fatal("password leaked in response")
	}
	if e.users.Count() != 2 {
		t.Fatalf("user count after register: got %d, want 2", e.users.Count())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	body := map[string]any{"name": "Jane", "email": "jane@example.com", "password": "secret1"}
	if w, _ := e.do(t, http.MethodPost, "/api/auth/register", "", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", w.Code)
	}
	w, resp := e.do(t, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got %d, want 400", w.Code)
	}
	if msg, _ := resp["message"].(string); msg != "email already registered" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if e.users.Count() != 2 {
		t.Fatalf("duplicate register changed the store: count %d", e.users.Count())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	e := newEnv(t)
	w, _ := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Jane", "email": "jane@example.com", "password": "abc",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password: got %d, want 400", w.Code)
	}
	if e.users.Count() != 1 {
		t.Fatalf("invalid register created a user: count %d", e.users.Count())
	}
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	_, _ = e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Jane", "email": "jane@example.com", "password": "secret1",
	})

	w, resp := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "jane@example.com", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}
	if tok, _ := data(t, resp)["token"].(string); tok == "" {
		t.Fatal("no token in login response")
	}

	// Wrong password and unknown email come back identically.
	for _, creds := range []map[string]any{
		{"email": "jane@example.com", "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "secret1"},
	} {
		w, resp := e.do(t, http.MethodPost, "/api/auth/login", "", creds)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("bad login %v: got %d, want 400", creds, w.Code)
		}
		if msg, _ := resp["message"].(string); msg != "invalid credentials" {
			t.Fatalf("bad login %v: message %q", creds, msg)
		}
		if resp["data"] != nil {
			t.Fatalf("bad login %v leaked data: %v", creds, resp["data"])
		}
	}
}

func TestProfile(t *testing.T) {
	e := newEnv(t)

	if w, _ := e.do(t, http.MethodGet, "/api/auth/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("profile without token: got %d, want 401", w.Code)
	}

	w, resp := e.do(t, http.MethodGet, "/api/auth/profile", e.adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: got %d", w.Code)
	}
	if email, _ := data(t, resp)["email"].(string); email != "admin@frontline.com" {
		t.Fatalf("unexpected profile email: %q", email)
	}

	// Token outliving its user resolves to not-found, not unauthorized.
	if w, _ := e.do(t, http.MethodGet, "/api/auth/profile", e.token(t, 999, "user"), nil); w.Code != http.StatusNotFound {
		t.Fatalf("profile of deleted user: got %d, want 404", w.Code)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	e := newEnv(t)
	w, resp := e.do(t, http.MethodPost, "/api/auth/forgot-password", "", map[string]any{
		"email": "nobody@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("forgot-password: got %d, want 400", w.Code)
	}
	if msg, _ := resp["message"].(string); msg != "email not found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
