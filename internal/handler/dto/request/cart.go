package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	AnimalID uuid.UUID `json:"animalId" binding:"required"`
}

type SetFilterRequest struct {
	Filter string `json:"filter" binding:"required"`
}

type SetPageRequest struct {
	Page int `json:"page" binding:"required"`
}
