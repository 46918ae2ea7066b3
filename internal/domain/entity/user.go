package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the original.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // "user" or "admin"
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the fields safe to hand to clients.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}
