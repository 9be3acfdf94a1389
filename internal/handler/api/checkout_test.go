//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/domain/user"
	"corral-store/internal/handler/api"
	"corral-store/internal/pkg/clock"
	"corral-store/internal/pkg/errs"
	"corral-store/internal/state"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/queries"
	"corral-store/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckout struct {
	result *commands.ConfirmSaleResult
	err    error
}

func (f *fakeCheckout) ConfirmSale(ctx context.Context, role user.Role, buyer commands.BuyerInput, cart *state.Cart) (*commands.ConfirmSaleResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSaleQueries struct{}

func (f *fakeSaleQueries) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.SaleRM, error) {
	return nil, queries.ErrSaleNotFound
}

func (f *fakeSaleQueries) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.SaleRM, error) {
	return nil, nil
}

type stubAnimalQueries struct{}

func (s *stubAnimalQueries) ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error) {
	return nil, nil
}

func (s *stubAnimalQueries) ListFiltered(ctx context.Context, filter string, page, pageSize int) (*queries.ListingPage, error) {
	return &queries.ListingPage{}, nil
}

func (s *stubAnimalQueries) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error) {
	return nil, queries.ErrAnimalNotFound
}

func (s *stubAnimalQueries) Pedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error) {
	return nil, queries.ErrAnimalNotFound
}

func (s *stubAnimalQueries) InvalidateListing(ctx context.Context) {}

type checkoutHandlerFixture struct {
	handler  *api.CheckoutHandler
	checkout *fakeCheckout
	sessions *state.Registry
	userID   uuid.UUID
}

func newCheckoutHandlerFixture(t *testing.T) *checkoutHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	checkout := &fakeCheckout{}
	sessions := state.NewRegistry(time.Hour, clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)), nil, nil)
	loader := usecase.NewCatalogLoader(&stubAnimalQueries{}, 8)

	return &checkoutHandlerFixture{
		handler:  api.NewCheckoutHandler(checkout, &fakeSaleQueries{}, sessions, loader),
		checkout: checkout,
		sessions: sessions,
		userID:   uuid.New(),
	}
}

func (f *checkoutHandlerFixture) confirm(t *testing.T) (*httptest.ResponseRecorder, *state.Session) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"fullName":"Ana Gomez","docId":"123"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", f.userID)
	c.Set("user_role", user.RoleAdmin)

	sess := f.sessions.GetOrCreate(f.userID, state.AppState{Page: 1, PageSize: 8})
	f.handler.Confirm(c)
	return w, sess
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	t.Run("mid-transaction failure sets the session error and maps to 502", func(t *testing.T) {
		f := newCheckoutHandlerFixture(t)
		f.checkout.err = errs.Mark(errs.New("copy to sale_details failed"), commands.ErrDetailsWriteFailed)

		w, sess := f.confirm(t)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		snapshot := sess.Store.Snapshot()
		assert.Equal(t, "Sale details write failed", snapshot.Err)
	})

	t.Run("unauthorized maps to 403 and still surfaces through the store", func(t *testing.T) {
		f := newCheckoutHandlerFixture(t)
		f.checkout.err = commands.ErrUnauthorized

		w, sess := f.confirm(t)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to confirm sales", sess.Store.Snapshot().Err)
	})

	t.Run("success clears the cart and leaves no error", func(t *testing.T) {
		f := newCheckoutHandlerFixture(t)
		saleID := uuid.New()
		f.checkout.result = &commands.ConfirmSaleResult{
			SaleID:     saleID,
			CustomerID: uuid.New(),
			TotalCents: 24999,
			LineCount:  1,
		}

		sess := f.sessions.GetOrCreate(f.userID, state.AppState{Page: 1, PageSize: 8})
		require.NoError(t, sess.Cart.Add(state.Item{
			ID:     uuid.New(),
			Name:   "Palomo",
			Plate:  "AR-001",
			Status: animal.StatusAvailable,
			Price:  animal.MustMoney(24999),
		}))

		w, sess := f.confirm(t)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, sess.Cart.Len())
		assert.Empty(t, sess.Store.Snapshot().Err)

		var resp struct {
			SaleID uuid.UUID `json:"saleId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, saleID, resp.SaleID)
	})
}
