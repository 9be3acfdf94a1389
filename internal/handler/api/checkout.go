package api

import (
	"errors"
	"net/http"

	"corral-store/internal/handler/dto/request"
	resdto "corral-store/internal/handler/dto/response"
	"corral-store/internal/handler/httperr"
	"corral-store/internal/handler/middleware"
	"corral-store/internal/state"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	sales    queries.SaleQueries
	sessions *state.Registry
	loader   *usecase.CatalogLoader
}

func NewCheckoutHandler(
	checkout commands.CheckoutCommands,
	sales queries.SaleQueries,
	sessions *state.Registry,
	loader *usecase.CatalogLoader,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		sales:    sales,
		sessions: sessions,
		loader:   loader,
	}
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess := h.sessions.GetOrCreate(userID, h.loader.InitialState())

	result, err := h.checkout.ConfirmSale(c.Request.Context(), role, req.ToInput(), sess.Cart)
	if err != nil {
		h.abortCheckout(c, sess, err)
		return
	}

	// The pipeline succeeded; the cart is consumed and the session's
	// catalog is stale, so both are refreshed here.
	sess.Cart.Clear()
	if err := h.loader.Load(c.Request.Context(), sess.Store); err != nil {
		// The sale is durable; a stale gallery fixes itself on the next
		// refresh.
		_ = c.Error(err)
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *CheckoutHandler) abortCheckout(c *gin.Context, sess *state.Session, err error) {
	var detail any
	var ce *commands.CheckoutError
	if errors.As(err, &ce) {
		detail = resdto.FromCheckoutError(ce)
	}

	status := http.StatusInternalServerError
	message := "Checkout failed"
	switch {
	case errors.Is(err, commands.ErrUnauthorized):
		status, message, detail = http.StatusForbidden, "Not authorized to confirm sales", nil
	case errors.Is(err, commands.ErrEmptyCart):
		status, message, detail = http.StatusUnprocessableEntity, "Cart is empty", nil
	case errors.Is(err, commands.ErrCustomerResolutionFailed):
		status, message = http.StatusBadGateway, "Customer resolution failed"
	case errors.Is(err, commands.ErrSaleCreationFailed):
		status, message = http.StatusBadGateway, "Sale creation failed"
	case errors.Is(err, commands.ErrDetailsWriteFailed):
		status, message = http.StatusBadGateway, "Sale details write failed"
	case errors.Is(err, commands.ErrInventoryUpdateFailed):
		status, message = http.StatusBadGateway, "Inventory update failed"
	}

	// Subscribers render failures from the state itself, so the session
	// store carries the message alongside the HTTP response.
	sess.Store.Apply(state.Patch{Err: &message})

	httperr.AbortWithError(c, status, err, message, detail)
}

func (h *CheckoutHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale id", nil)
		return
	}

	rm, err := h.sales.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrSaleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Sale not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load the sale", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleRM(rm))
}

// ListCustomerSales returns the sale history for one customer, newest
// first.
func (h *CheckoutHandler) ListCustomerSales(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid customerId query parameter is required", nil)
		return
	}

	rms, err := h.sales.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sales", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSaleRMs(rms))
}
