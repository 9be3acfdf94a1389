package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type SaleRM struct {
	ID         uuid.UUID    `json:"id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	TotalCents int64        `json:"total_cents"`
	Status     string       `json:"status"`
	Lines      []SaleLineRM `json:"lines"`
	CreatedAt  time.Time    `json:"created_at"`
}

type SaleLineRM struct {
	ItemID         uuid.UUID `json:"item_id"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}
