package handlers_test

import (
	"net/http"
	"testing"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
)

func TestContactSubmit(t *testing.T) {
	e := newEnv(t)

	w, resp := e.do(t, http.MethodPost, "/api/contact", "", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "do you stock BOSCH router bits?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: got %d, body %s", w.Code, w.Body.String())
	}
	id := int64(data(t, resp)["id"].(float64))

	stored, err := e.contacts.GetByID(id)
	if err != nil {
		t.Fatalf("contact not persisted: %v", err)
	}
	if stored.Status != entity.ContactStatusNew {
		t.Fatalf("new contact status %q, want new", stored.Status)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	e := newEnv(t)
	cases := []map[string]any{
		{"email": "jane@example.com", "message": "missing the name field"},
		{"name": "Jane", "email": "not-an-email", "message": "broken email address"},
		{"name": "Jane", "email": "jane@example.com", "message": "hi"},
	}
	for _, body := range cases {
		if w, _ := e.do(t, http.MethodPost, "/api/contact", "", body); w.Code != http.StatusBadRequest {
			t.Fatalf("submit %v: got %d, want 400", body, w.Code)
		}
	}
	if len(e.contacts.All()) != 0 {
		t.Fatal("invalid submission persisted")
	}
}

func TestContactReadsAreAdminOnly(t *testing.T) {
	e := newEnv(t)
	_, _ = e.do(t, http.MethodPost, "/api/contact", "", map[string]any{
		"name": "Jane", "email": "jane@example.com", "message": "quote request please",
	})

	if w, _ := e.do(t, http.MethodGet, "/api/contact", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list: got %d, want 401", w.Code)
	}
	if w, _ := e.do(t, http.MethodGet, "/api/contact", e.token(t, 2, "user"), nil); w.Code != http.StatusForbidden {
		t.Fatalf("user list: got %d, want 403", w.Code)
	}

	w, resp := e.do(t, http.MethodGet, "/api/contact", e.adminToken(t), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list: got %d", w.Code)
	}
	if items, _ := resp["data"].([]any); len(items) != 1 {
		t.Fatalf("contact list size %d, want 1", len(items))
	}

	if w, _ := e.do(t, http.MethodGet, "/api/contact/1", e.adminToken(t), nil); w.Code != http.StatusOK {
		t.Fatalf("admin get: got %d", w.Code)
	}
	if w, _ := e.do(t, http.MethodGet, "/api/contact/999", e.adminToken(t), nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing contact: got %d, want 404", w.Code)
	}
}
