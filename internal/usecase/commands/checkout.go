package commands

import (
	"context"
	"fmt"
	"log/slog"

	"corral-store/internal/domain/sale"
	"corral-store/internal/domain/user"
	"corral-store/internal/events"
	"corral-store/internal/pkg/clock"
	"corral-store/internal/pkg/errs"
	"corral-store/internal/pkg/metrics"
	"corral-store/internal/state"
	"corral-store/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized             = errs.New("not authorized to confirm sales")
	ErrEmptyCart                = errs.New("cart is empty")
	ErrCustomerResolutionFailed = errs.New("customer resolution failed")
	ErrSaleCreationFailed       = errs.New("sale header creation failed")
	ErrDetailsWriteFailed       = errs.New("sale details write failed")
	ErrInventoryUpdateFailed    = errs.New("inventory status update failed")
)

// Step names the states of one checkout attempt. Every persistence write
// is a separate network call with no cross-step atomicity, so a failure
// report names exactly where the attempt stopped.
type Step string

const (
	StepIdle              Step = "idle"
	StepCustomerResolved  Step = "customer_resolved"
	StepSaleHeaderCreated Step = "sale_header_created"
	StepDetailsWritten    Step = "details_written"
	StepInventoryUpdated  Step = "inventory_updated"
)

// CheckoutError reports a mid-transaction failure. Reached is the last
// state the attempt completed; SaleID is set once the sale header exists,
// giving the caller the handle it needs for manual reconciliation (this
// service never deletes an orphaned header on its own).
type CheckoutError struct {
	Reached Step
	SaleID  uuid.UUID
	err     error
}

func (e *CheckoutError) Error() string {
	if e.SaleID != uuid.Nil {
		return fmt.Sprintf("checkout failed after %s (sale %s): %v", e.Reached, e.SaleID, e.err)
	}
	return fmt.Sprintf("checkout failed after %s: %v", e.Reached, e.err)
}

func (e *CheckoutError) Unwrap() error {
	return e.err
}

type BuyerInput struct {
	FullName string
	DocID    string
	Phone    string
	Email    *string
}

type ConfirmSaleResult struct {
	SaleID     uuid.UUID
	CustomerID uuid.UUID
	TotalCents int64
	LineCount  int
}

type CheckoutCommands interface {
	// ConfirmSale runs the full checkout pipeline against the captured
	// cart contents. On success the caller is responsible for clearing
	// the cart; the orchestrator never mutates it.
	ConfirmSale(ctx context.Context, role user.Role, buyer BuyerInput, cart *state.Cart) (*ConfirmSaleResult, error)
}

type checkoutUseCaseImpl struct {
	customerRepo CustomerRepository
	saleRepo     SaleRepository
	animalRepo   AnimalRepository
	invalidator  ListingInvalidator
	authorizer   usecase.Authorizer
	publisher    events.Publisher
	metrics      *metrics.StoreMetrics
	clock        clock.Clock
}

func NewCheckoutUseCase(
	customerRepo CustomerRepository,
	saleRepo SaleRepository,
	animalRepo AnimalRepository,
	invalidator ListingInvalidator,
	authorizer usecase.Authorizer,
	publisher events.Publisher,
	m *metrics.StoreMetrics,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		animalRepo:   animalRepo,
		invalidator:  invalidator,
		authorizer:   authorizer,
		publisher:    publisher,
		metrics:      m,
		clock:        clk,
	}
}

func (u *checkoutUseCaseImpl) ConfirmSale(
	ctx context.Context,
	role user.Role,
	buyer BuyerInput,
	cart *state.Cart,
) (*ConfirmSaleResult, error) {
	// Validation failures reject synchronously, before any write.
	if !u.authorizer.Can(role, usecase.ActionConfirmSale) {
		u.countOutcome("unauthorized")
		return nil, ErrUnauthorized
	}

	// The cart is read exactly once. Checkout steps suspend on network
	// writes, and the user can keep mutating the cart in between; every
	// later step works from this capture so a line removed mid-attempt
	// cannot be dropped from the details or the inventory transition.
	lines := cart.Lines()
	if len(lines) == 0 {
		u.countOutcome("empty_cart")
		return nil, ErrEmptyCart
	}

	customerID, err := u.resolveCustomer(ctx, buyer)
	if err != nil {
		u.countOutcome("customer_resolution_failed")
		return nil, u.fail(StepIdle, uuid.Nil, err, ErrCustomerResolutionFailed)
	}

	saleLines := make([]sale.Line, len(lines))
	for i, l := range lines {
		saleLines[i] = sale.Line{ItemID: l.ItemID, UnitPrice: l.PriceAtAdd}
	}

	// Total is the sum of captured prices at this instant; catalog prices
	// are never re-read.
	saleEntity, err := sale.NewSale(customerID, saleLines, u.clock.Now())
	if err != nil {
		u.countOutcome("sale_creation_failed")
		return nil, u.fail(StepCustomerResolved, uuid.Nil, err, ErrSaleCreationFailed)
	}

	if err := u.saleRepo.CreateHeader(ctx, saleEntity); err != nil {
		u.countOutcome("sale_creation_failed")
		return nil, u.fail(StepCustomerResolved, uuid.Nil, err, ErrSaleCreationFailed)
	}

	// Point of no return: from here the attempt runs to its own success
	// or failure, and failures leave partial state for reconciliation.
	if err := u.saleRepo.CreateDetails(ctx, saleEntity.ID(), saleEntity.Lines()); err != nil {
		u.countOutcome("details_write_failed")
		return nil, u.fail(StepSaleHeaderCreated, saleEntity.ID(), err, ErrDetailsWriteFailed)
	}

	if err := u.animalRepo.BulkMarkSold(ctx, saleEntity.ItemIDs(), u.clock.Now()); err != nil {
		u.countOutcome("inventory_update_failed")
		return nil, u.fail(StepDetailsWritten, saleEntity.ID(), err, ErrInventoryUpdateFailed)
	}

	u.invalidator.InvalidateListing(ctx)
	u.countOutcome("success")
	u.publishConfirmed(ctx, saleEntity)

	return &ConfirmSaleResult{
		SaleID:     saleEntity.ID(),
		CustomerID: customerID,
		TotalCents: saleEntity.Total().Cents(),
		LineCount:  len(saleLines),
	}, nil
}

// resolveCustomer reuses the customer whose document id matches, creating
// a new record otherwise. Exactly one customer exists per checkout.
func (u *checkoutUseCaseImpl) resolveCustomer(ctx context.Context, buyer BuyerInput) (uuid.UUID, error) {
	if buyer.DocID != "" {
		existing, err := u.customerRepo.FindByDocID(ctx, buyer.DocID)
		if err == nil {
			return existing.ID, nil
		}
		if !infraNotFound(err) {
			return uuid.Nil, err
		}
	}

	customerEntity, err := newCustomer(buyer, u.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	return u.customerRepo.Create(ctx, customerEntity)
}

func (u *checkoutUseCaseImpl) publishConfirmed(ctx context.Context, s *sale.Sale) {
	evt := events.SaleConfirmed{
		SaleID:     s.ID(),
		CustomerID: s.CustomerID(),
		TotalCents: s.Total().Cents(),
		ItemIDs:    s.ItemIDs(),
		OccurredAt: u.clock.Now(),
	}
	if err := u.publisher.PublishSaleConfirmed(ctx, evt); err != nil {
		// Best-effort event; the sale itself is already durable.
		slog.Warn("failed to publish sale event", "sale_id", s.ID(), "error", err)
	}
}

func (u *checkoutUseCaseImpl) fail(reached Step, saleID uuid.UUID, cause, sentinel error) error {
	return &CheckoutError{
		Reached: reached,
		SaleID:  saleID,
		err:     errs.Mark(cause, sentinel),
	}
}

func (u *checkoutUseCaseImpl) countOutcome(outcome string) {
	if u.metrics != nil {
		u.metrics.Checkouts.WithLabelValues(outcome).Inc()
	}
}
