package animal

import (
	"errors"
	"time"

	"corral-store/internal/pkg/clock"

	"github.com/google/uuid"
)

const MaxPlateLength = 32

var (
	ErrEmptyName        = errors.New("animal name is required")
	ErrEmptyPlate       = errors.New("plate number is required")
	ErrPlateTooLong     = errors.New("plate number too long")
	ErrInvalidSex       = errors.New("invalid sex")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrBirthInFuture    = errors.New("birth date cannot be in the future")
	ErrSelfParent       = errors.New("animal cannot be its own parent")
	ErrNotAvailable     = errors.New("animal is not available for sale")
	ErrAlreadyDeleted   = errors.New("animal is already deleted")
	ErrIncompleteParent = errors.New("lineage requires both parents or none")
)

// Animal is one inventory item: a bird listed in the storefront, with an
// optional two-parent lineage reference.
type Animal struct {
	id        uuid.UUID
	name      string
	plate     Plate
	sex       Sex
	birthDate *time.Time
	price     Money
	fatherID  *uuid.UUID
	motherID  *uuid.UUID
	status    Status
	deletedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

type Services struct {
	Clock clock.Clock
}

func NewAnimal(
	services *Services,
	name string,
	plate Plate,
	sex Sex,
	birthDate *time.Time,
	price Money,
	fatherID, motherID *uuid.UUID,
) (*Animal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !sex.IsValid() {
		return nil, ErrInvalidSex
	}
	now := services.Clock.Now()
	if birthDate != nil && birthDate.After(now) {
		return nil, ErrBirthInFuture
	}
	// Lineage is either fully known or fully unknown.
	if (fatherID == nil) != (motherID == nil) {
		return nil, ErrIncompleteParent
	}

	id := uuid.New()
	if fatherID != nil && (*fatherID == id || *motherID == id) {
		return nil, ErrSelfParent
	}

	return &Animal{
		id:        id,
		name:      name,
		plate:     plate,
		sex:       sex,
		birthDate: birthDate,
		price:     price,
		fatherID:  fatherID,
		motherID:  motherID,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAnimal(
	id uuid.UUID,
	name string,
	plate Plate,
	sex Sex,
	birthDate *time.Time,
	price Money,
	fatherID, motherID *uuid.UUID,
	status Status,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Animal {
	return &Animal{
		id:        id,
		name:      name,
		plate:     plate,
		sex:       sex,
		birthDate: birthDate,
		price:     price,
		fatherID:  fatherID,
		motherID:  motherID,
		status:    status,
		deletedAt: deletedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Animal) IsAvailable() bool {
	return a.status == StatusAvailable && a.deletedAt == nil
}

func (a *Animal) IsDeleted() bool {
	return a.deletedAt != nil || a.status == StatusDeleted
}

// ApplyListing replaces the editable listing fields, keeping lifecycle
// state intact. Used by inventory edits, which submit the full form.
func (a *Animal) ApplyListing(
	name string,
	plate Plate,
	sex Sex,
	birthDate *time.Time,
	price Money,
	fatherID, motherID *uuid.UUID,
	now time.Time,
) error {
	if a.IsDeleted() {
		return ErrAlreadyDeleted
	}
	if name == "" {
		return ErrEmptyName
	}
	if !sex.IsValid() {
		return ErrInvalidSex
	}
	if birthDate != nil && birthDate.After(now) {
		return ErrBirthInFuture
	}
	if (fatherID == nil) != (motherID == nil) {
		return ErrIncompleteParent
	}
	if fatherID != nil && (*fatherID == a.id || *motherID == a.id) {
		return ErrSelfParent
	}

	a.name = name
	a.plate = plate
	a.sex = sex
	a.birthDate = birthDate
	a.price = price
	a.fatherID = fatherID
	a.motherID = motherID
	a.updatedAt = now
	return nil
}

// MarkSold transitions the animal out of the listable pool.
func (a *Animal) MarkSold(now time.Time) error {
	if !a.IsAvailable() {
		return ErrNotAvailable
	}
	a.status = StatusSold
	a.updatedAt = now
	return nil
}

// SoftDelete stamps deletedAt; the row is never physically removed so sale
// details recorded against it keep a valid reference.
func (a *Animal) SoftDelete(now time.Time) error {
	if a.IsDeleted() {
		return ErrAlreadyDeleted
	}
	a.status = StatusDeleted
	a.deletedAt = &now
	a.updatedAt = now
	return nil
}

func (a *Animal) ID() uuid.UUID         { return a.id }
func (a *Animal) Name() string          { return a.name }
func (a *Animal) Plate() Plate          { return a.plate }
func (a *Animal) Sex() Sex              { return a.sex }
func (a *Animal) BirthDate() *time.Time { return a.birthDate }
func (a *Animal) Price() Money          { return a.price }
func (a *Animal) FatherID() *uuid.UUID  { return a.fatherID }
func (a *Animal) MotherID() *uuid.UUID  { return a.motherID }
func (a *Animal) Status() Status        { return a.status }
func (a *Animal) DeletedAt() *time.Time { return a.deletedAt }
func (a *Animal) CreatedAt() time.Time  { return a.createdAt }
func (a *Animal) UpdatedAt() time.Time  { return a.updatedAt }
