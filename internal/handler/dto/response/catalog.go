package response

import (
	"time"

	"corral-store/internal/usecase/queries"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AnimalResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Plate      string     `json:"plate"`
	Sex        string     `json:"sex"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	PriceCents int64      `json:"priceCents"`
	Status     string     `json:"status"`
	FatherID   *uuid.UUID `json:"fatherId,omitempty"`
	MotherID   *uuid.UUID `json:"motherId,omitempty"`
	FatherName *string    `json:"fatherName,omitempty"`
	MotherName *string    `json:"motherName,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type ListingPageResponse struct {
	Items      []*AnimalResponse `json:"items"`
	Filter     string            `json:"filter"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

type PedigreeResponse struct {
	Animal *AnimalResponse   `json:"animal"`
	Father *AncestorResponse `json:"father,omitempty"`
	Mother *AncestorResponse `json:"mother,omitempty"`
}

type AncestorResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	FatherName *string   `json:"fatherName,omitempty"`
	MotherName *string   `json:"motherName,omitempty"`
}

func FromAnimalRM(rm *readmodel.AnimalRM) *AnimalResponse {
	var resp AnimalResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAnimalRMs(rms []*readmodel.AnimalRM) []*AnimalResponse {
	out := make([]*AnimalResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAnimalRM(rm)
	}
	return out
}

func FromListingPage(page *queries.ListingPage) *ListingPageResponse {
	return &ListingPageResponse{
		Items:      FromAnimalRMs(page.Items),
		Filter:     page.Filter,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

func FromPedigreeRM(rm *readmodel.PedigreeRM) *PedigreeResponse {
	resp := &PedigreeResponse{Animal: FromAnimalRM(&rm.Animal)}
	if rm.Father != nil {
		var father AncestorResponse
		_ = copier.Copy(&father, rm.Father)
		resp.Father = &father
	}
	if rm.Mother != nil {
		var mother AncestorResponse
		_ = copier.Copy(&mother, rm.Mother)
		resp.Mother = &mother
	}
	return resp
}
