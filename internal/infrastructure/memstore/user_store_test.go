package memstore

import (
	"errors"
	"testing"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

func TestUserStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewUserStore()

	a := &entity.User{Name: "A", Email: "a@example.com"}
	b := &entity.User{Name: "B", Email: "b@example.com"}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := s.Create(b); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids not sequential: got %d, %d", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}
}

func TestUserStoreCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewUserStore()
	_ = s.Create(&entity.User{Name: "A", Email: "a@example.com"})

	dup := &entity.User{Name: "B", Email: "a@example.com"}
	if err := s.Create(dup); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("duplicate email: expected ErrConflict, got %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("duplicate create changed the store: count %d", s.Count())
	}

	// The email is free again once the record is gone.
	if _, err := s.Delete(1); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := s.Create(dup); err != nil {
		t.Fatalf("re-create after delete failed: %v", err)
	}
}

func TestUserStoreIDsNotReusedAfterDelete(t *testing.T) {
	s := NewUserStore()
	_ = s.Create(&entity.User{Email: "a@example.com"})
	b := &entity.User{Email: "b@example.com"}
	_ = s.Create(b)

	if _, err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	c := &entity.User{Email: "c@example.com"}
	_ = s.Create(c)
	if c.ID == b.ID {
		t.Fatalf("id %d reused after deletion", b.ID)
	}
	if c.ID != 3 {
		t.Fatalf("unexpected id after delete: got %d, want 3", c.ID)
	}
}

func TestUserStoreLookups(t *testing.T) {
	s := NewUserStore()
	u := &entity.User{Name: "A", Email: "a@example.com"}
	_ = s.Create(u)

	got, err := s.GetByEmail("a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("GetByEmail() returned wrong record: %d", got.ID)
	}
	if _, err := s.GetByEmail("missing@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByID(999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreDelete(t *testing.T) {
	s := NewUserStore()
	u := &entity.User{Email: "a@example.com"}
	_ = s.Create(u)

	removed, err := s.Delete(u.ID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed.Email != "a@example.com" {
		t.Fatalf("Delete() returned wrong record: %q", removed.Email)
	}
	if s.Count() != 0 {
		t.Fatalf("store not empty after delete: %d", s.Count())
	}
	if _, err := s.Delete(u.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreDeleteReturnsCopy(t *testing.T) {
	s := NewUserStore()
	u := &entity.User{Email: "a@example.com"}
	_ = s.Create(u)

	internal := s.users[0]
	removed, err := s.Delete(u.ID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed == internal {
		t.Fatal("Delete() returned the internal record instead of a copy")
	}
}

func TestUserStoreReturnsCopies(t *testing.T) {
	s := NewUserStore()
	_ = s.Create(&entity.User{Name: "A", Email: "a@example.com"})

	got, _ := s.GetByEmail("a@example.com")
	got.Name = "mutated"

	again, _ := s.GetByEmail("a@example.com")
	if again.Name != "A" {
		t.Fatal("store record mutated through a returned copy")
	}
}
