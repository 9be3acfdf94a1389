package readmodel

import (
	"github.com/google/uuid"
)

// AuthorizedUserRM is the authenticated-user view carried through auth
// flows and into the session context.
type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
