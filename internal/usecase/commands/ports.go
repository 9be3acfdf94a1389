package commands

import (
	"context"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/domain/customer"
	"corral-store/internal/domain/sale"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Persistence gateway ports. Every call either returns its declared result
// or fails with an error the infra layer has wrapped into a
// RepositoryError; no retries happen at this layer.

type AnimalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error)
	Create(ctx context.Context, a *animal.Animal) (uuid.UUID, error)
	Update(ctx context.Context, a *animal.Animal) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
	// BulkMarkSold moves every listed id to Sold in one statement.
	BulkMarkSold(ctx context.Context, ids []uuid.UUID, soldAt time.Time) error
}

type CustomerRepository interface {
	// FindByDocID returns KindNotFound when no customer carries the
	// document id; that is a normal outcome, not a failure.
	FindByDocID(ctx context.Context, docID string) (*readmodel.CustomerRM, error)
	Create(ctx context.Context, c *customer.Customer) (uuid.UUID, error)
}

type SaleRepository interface {
	CreateHeader(ctx context.Context, s *sale.Sale) error
	CreateDetails(ctx context.Context, saleID uuid.UUID, lines []sale.Line) error
}

// ListingInvalidator drops the cached public listing after any write that
// changes what the gallery shows.
type ListingInvalidator interface {
	InvalidateListing(ctx context.Context)
}
