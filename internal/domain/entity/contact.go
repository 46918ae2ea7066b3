package entity

import "time"

// Contact statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusResponded = "responded"
	ContactStatusResolved  = "resolved"
)

// ContactUpdateStatuses are the values an admin may set on a submission.
var ContactUpdateStatuses = []string{
	ContactStatusNew,
	ContactStatusResponded,
	ContactStatusResolved,
}

// Contact is a contact-form submission. Status is the only mutable field.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"timestamp"`
	// Pointer so submissions never touched by an admin omit the field
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
