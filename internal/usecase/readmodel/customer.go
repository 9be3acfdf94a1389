package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CustomerRM struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	DocID     string    `json:"doc_id"`
	Phone     string    `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
