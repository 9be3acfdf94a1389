package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFullName = errors.New("customer full name is required")
	ErrInvalidEmail  = errors.New("invalid customer email")
)

// Customer is a buyer record. DocID is a natural dedup key: checkouts reuse
// an existing record when the document id matches instead of inserting a
// duplicate. A customer without a document id is always a fresh record.
type Customer struct {
	id        uuid.UUID
	fullName  string
	docID     string
	phone     string
	email     *string
	createdAt time.Time
}

func NewCustomer(fullName, docID, phone string, email *string, now time.Time) (*Customer, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	docID = strings.TrimSpace(docID)
	if email != nil && !strings.Contains(*email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Customer{
		id:        uuid.New(),
		fullName:  fullName,
		docID:     docID,
		phone:     phone,
		email:     email,
		createdAt: now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, fullName, docID, phone string, email *string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		fullName:  fullName,
		docID:     docID,
		phone:     phone,
		email:     email,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) DocID() string        { return c.docID }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Email() *string       { return c.email }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
