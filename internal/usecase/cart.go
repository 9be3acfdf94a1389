package usecase

import (
	"context"

	"corral-store/internal/pkg/errs"
	"corral-store/internal/pkg/metrics"
	"corral-store/internal/state"
	"corral-store/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound    = errs.New("item not found")
	ErrCartItemUnavailable = errs.New("item not available for sale")
)

// CartService mutates a session's cart against the live catalog. The add
// path re-reads the item so the captured price is the price at add time,
// not whatever the session last loaded.
type CartService struct {
	animals queries.AnimalQueries
	metrics *metrics.StoreMetrics
}

func NewCartService(animals queries.AnimalQueries, m *metrics.StoreMetrics) *CartService {
	return &CartService{animals: animals, metrics: m}
}

func (s *CartService) AddItem(ctx context.Context, cart *state.Cart, animalID uuid.UUID) error {
	rm, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return errs.Mark(err, ErrCartItemNotFound)
	}

	item, err := itemFromRM(rm)
	if err != nil {
		return errs.Mark(err, ErrCartItemUnavailable)
	}

	if err := cart.Add(item); err != nil {
		return errs.Mark(err, ErrCartItemUnavailable)
	}
	s.count("add")
	return nil
}

func (s *CartService) RemoveItem(cart *state.Cart, animalID uuid.UUID) {
	cart.Remove(animalID)
	s.count("remove")
}

func (s *CartService) Clear(cart *state.Cart) {
	cart.Clear()
	s.count("clear")
}

func (s *CartService) count(op string) {
	if s.metrics != nil {
		s.metrics.CartOps.WithLabelValues(op).Inc()
	}
}
