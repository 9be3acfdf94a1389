package response

import (
	"time"

	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	SaleID     uuid.UUID `json:"saleId"`
	CustomerID uuid.UUID `json:"customerId"`
	TotalCents int64     `json:"totalCents"`
	LineCount  int       `json:"lineCount"`
}

// CheckoutFailureDetail names where a failed attempt stopped. SaleID is
// present once a header row exists.
type CheckoutFailureDetail struct {
	Step   string     `json:"step"`
	SaleID *uuid.UUID `json:"saleId,omitempty"`
}

type SaleResponse struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customerId"`
	TotalCents int64              `json:"totalCents"`
	Status     string             `json:"status"`
	Lines      []SaleLineResponse `json:"lines"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type SaleLineResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

func FromCheckoutResult(res *commands.ConfirmSaleResult) *CheckoutResponse {
	return &CheckoutResponse{
		SaleID:     res.SaleID,
		CustomerID: res.CustomerID,
		TotalCents: res.TotalCents,
		LineCount:  res.LineCount,
	}
}

func FromCheckoutError(ce *commands.CheckoutError) *CheckoutFailureDetail {
	detail := &CheckoutFailureDetail{Step: string(ce.Reached)}
	if ce.SaleID != uuid.Nil {
		id := ce.SaleID
		detail.SaleID = &id
	}
	return detail
}

func FromSaleRMs(rms []*readmodel.SaleRM) []*SaleResponse {
	out := make([]*SaleResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromSaleRM(rm)
	}
	return out
}

func FromSaleRM(rm *readmodel.SaleRM) *SaleResponse {
	lines := make([]SaleLineResponse, len(rm.Lines))
	for i, l := range rm.Lines {
		lines[i] = SaleLineResponse{ItemID: l.ItemID, UnitPriceCents: l.UnitPriceCents}
	}
	return &SaleResponse{
		ID:         rm.ID,
		CustomerID: rm.CustomerID,
		TotalCents: rm.TotalCents,
		Status:     rm.Status,
		Lines:      lines,
		CreatedAt:  rm.CreatedAt,
	}
}
