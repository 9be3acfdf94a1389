package api

import (
	"errors"
	"net/http"

	"corral-store/internal/handler/dto/request"
	resdto "corral-store/internal/handler/dto/response"
	"corral-store/internal/handler/httperr"
	"corral-store/internal/handler/middleware"
	"corral-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventory commands.InventoryCommands
}

func NewInventoryHandler(inventory commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.inventory.CreateAnimal(c.Request.Context(), role, req.ToInput())
	if err != nil {
		h.abortInventory(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAnimalRM(rm))
}

func (h *InventoryHandler) Update(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid animal id", nil)
		return
	}

	var req request.AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.inventory.UpdateAnimal(c.Request.Context(), role, id, req.ToInput())
	if err != nil {
		h.abortInventory(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnimalRM(rm))
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid animal id", nil)
		return
	}

	if err := h.inventory.DeleteAnimal(c.Request.Context(), role, id); err != nil {
		h.abortInventory(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) abortInventory(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInventoryUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, commands.ErrAnimalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Animal not found", nil)
	case errors.Is(err, commands.ErrDuplicatePlate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Plate number already in use", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid animal data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Inventory operation failed", nil)
	}
}
