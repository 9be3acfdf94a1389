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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler exposes one user's storefront session: the reactive state
// snapshot, the gallery filter and page, and the cart. Every route here
// sits behind RequireAuth.
type StoreHandler struct {
	sessions *state.Registry
	loader   *usecase.CatalogLoader
	cart     *usecase.CartService
}

func NewStoreHandler(sessions *state.Registry, loader *usecase.CatalogLoader, cart *usecase.CartService) *StoreHandler {
	return &StoreHandler{
		sessions: sessions,
		loader:   loader,
		cart:     cart,
	}
}

func (h *StoreHandler) session(c *gin.Context) (*state.Session, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}
	return h.sessions.GetOrCreate(userID, h.loader.InitialState()), true
}

func (h *StoreHandler) GetState(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppState(sess.Store.Snapshot()))
}

// Refresh re-fetches the catalog into the session store.
func (h *StoreHandler) Refresh(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.loader.Load(c.Request.Context(), sess.Store); err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to refresh the catalog", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppState(sess.Store.Snapshot()))
}

func (h *StoreHandler) SetFilter(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req request.SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	h.loader.SetFilter(sess.Store, req.Filter)
	c.JSON(http.StatusOK, resdto.FromAppState(sess.Store.Snapshot()))
}

func (h *StoreHandler) SetPage(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req request.SetPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	h.loader.SetPage(sess.Store, req.Page)
	c.JSON(http.StatusOK, resdto.FromAppState(sess.Store.Snapshot()))
}

func (h *StoreHandler) GetCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartLines(sess.Cart.Lines()))
}

func (h *StoreHandler) AddCartItem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), sess.Cart, req.AnimalID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Animal not found", nil)
		case errors.Is(err, usecase.ErrCartItemUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Animal is not available for sale", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add to cart", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLines(sess.Cart.Lines()))
}

func (h *StoreHandler) RemoveCartItem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid animal id", nil)
		return
	}

	h.cart.RemoveItem(sess.Cart, id)
	c.JSON(http.StatusOK, resdto.FromCartLines(sess.Cart.Lines()))
}

func (h *StoreHandler) ClearCart(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	h.cart.Clear(sess.Cart)
	c.Status(http.StatusNoContent)
}
