package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "corral-store/internal/handler/dto/response"
	"corral-store/internal/handler/httperr"
	"corral-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the public gallery. No session and no auth: the
// listing is the same for every anonymous visitor and comes from the
// shared cache.
type CatalogHandler struct {
	animals queries.AnimalQueries
}

func NewCatalogHandler(animals queries.AnimalQueries) *CatalogHandler {
	return &CatalogHandler{animals: animals}
}

func (h *CatalogHandler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", queries.FilterAll)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	listing, err := h.animals.ListFiltered(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown filter value", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load the catalog", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingPage(listing))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid animal id", nil)
		return
	}

	rm, err := h.animals.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAnimalNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Animal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load the animal", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnimalRM(rm))
}

func (h *CatalogHandler) Pedigree(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid animal id", nil)
		return
	}

	rm, err := h.animals.Pedigree(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAnimalNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Animal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load the pedigree", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPedigreeRM(rm))
}
