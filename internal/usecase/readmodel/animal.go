package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AnimalRM is the read model for a listed animal: the stored row joined
// with its parents' display names. Soft-deleted rows never appear here.
type AnimalRM struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Plate      string     `json:"plate"`
	Sex        string     `json:"sex"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	PriceCents int64      `json:"price_cents"`
	Status     string     `json:"status"`
	FatherID   *uuid.UUID `json:"father_id,omitempty"`
	MotherID   *uuid.UUID `json:"mother_id,omitempty"`
	FatherName *string    `json:"father_name,omitempty"`
	MotherName *string    `json:"mother_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// PedigreeRM is a two-generation ancestry view for one animal.
type PedigreeRM struct {
	Animal AnimalRM    `json:"animal"`
	Father *AncestorRM `json:"father,omitempty"`
	Mother *AncestorRM `json:"mother,omitempty"`
}

type AncestorRM struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	FatherName *string   `json:"father_name,omitempty"`
	MotherName *string   `json:"mother_name,omitempty"`
}
