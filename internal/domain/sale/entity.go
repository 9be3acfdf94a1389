package sale

import (
	"errors"
	"time"

	"corral-store/internal/domain/animal"

	"github.com/google/uuid"
)

var (
	ErrNoLines       = errors.New("sale requires at least one line")
	ErrDuplicateItem = errors.New("sale contains the same item twice")
	ErrTotalMismatch = errors.New("sale total does not match line prices")
)

type Status string

const (
	// StatusConfirmed is the only status this service writes; a sale record
	// is created once per successful checkout and never mutated afterwards.
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

// Line is one sold item with the unit price captured when the item entered
// the cart, not the catalog price at commit time.
type Line struct {
	ItemID    uuid.UUID
	UnitPrice animal.Money
}

type Sale struct {
	id         uuid.UUID
	customerID uuid.UUID
	total      animal.Money
	status     Status
	lines      []Line
	createdAt  time.Time
}

// NewSale builds a confirmed sale. The total is derived from the captured
// line prices; it is never recomputed from the catalog.
func NewSale(customerID uuid.UUID, lines []Line, now time.Time) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	seen := make(map[uuid.UUID]struct{}, len(lines))
	var total animal.Money
	for _, l := range lines {
		if _, dup := seen[l.ItemID]; dup {
			return nil, ErrDuplicateItem
		}
		seen[l.ItemID] = struct{}{}
		total = total.Add(l.UnitPrice)
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)

	return &Sale{
		id:         uuid.New(),
		customerID: customerID,
		total:      total,
		status:     StatusConfirmed,
		lines:      copied,
		createdAt:  now,
	}, nil
}

func ReconstructSale(id, customerID uuid.UUID, total animal.Money, status Status, lines []Line, createdAt time.Time) *Sale {
	return &Sale{
		id:         id,
		customerID: customerID,
		total:      total,
		status:     status,
		lines:      lines,
		createdAt:  createdAt,
	}
}

// VerifyTotal checks the header/lines invariant after reconstruction.
func (s *Sale) VerifyTotal() error {
	var sum animal.Money
	for _, l := range s.lines {
		sum = sum.Add(l.UnitPrice)
	}
	if sum.Cents() != s.total.Cents() {
		return ErrTotalMismatch
	}
	return nil
}

func (s *Sale) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.lines))
	for i, l := range s.lines {
		ids[i] = l.ItemID
	}
	return ids
}

func (s *Sale) ID() uuid.UUID         { return s.id }
func (s *Sale) CustomerID() uuid.UUID { return s.customerID }
func (s *Sale) Total() animal.Money   { return s.total }
func (s *Sale) Status() Status        { return s.status }
func (s *Sale) CreatedAt() time.Time  { return s.createdAt }

func (s *Sale) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}
