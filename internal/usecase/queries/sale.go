package queries

import (
	"context"

	"corral-store/internal/pkg/errs"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrSaleNotFound = errs.New("sale not found")

type SaleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.SaleRM, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.SaleRM, error)
}

type SaleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SaleRM, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.SaleRM, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.SaleRM, error) {
	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSaleNotFound)
	}
	return rm, nil
}

func (q *saleQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.SaleRM, error) {
	return q.store.FindByCustomerID(ctx, customerID)
}
