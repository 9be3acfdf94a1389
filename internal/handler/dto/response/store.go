package response

import (
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/state"

	"github.com/google/uuid"
)

type StoreItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Plate      string     `json:"plate"`
	Sex        string     `json:"sex"`
	Status     string     `json:"status"`
	PriceCents int64      `json:"priceCents"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
}

type CartLineResponse struct {
	ItemID          uuid.UUID `json:"itemId"`
	Name            string    `json:"name"`
	Plate           string    `json:"plate"`
	PriceAtAddCents int64     `json:"priceAtAddCents"`
	PriceAtAdd      string    `json:"priceAtAdd"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalCents int64              `json:"totalCents"`
	Total      string             `json:"total"`
}

// StoreStateResponse is a full snapshot of one session's reactive state.
type StoreStateResponse struct {
	Animals  []StoreItemResponse `json:"animals"`
	Filtered []StoreItemResponse `json:"filtered"`
	Filter   string              `json:"filter"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
	Loading  bool                `json:"loading"`
	Err      string              `json:"error,omitempty"`
	Cart     CartResponse        `json:"cart"`
}

func FromAppState(s state.AppState) *StoreStateResponse {
	return &StoreStateResponse{
		Animals:  fromItems(s.Animals),
		Filtered: fromItems(s.Filtered),
		Filter:   s.Filter,
		Page:     s.Page,
		PageSize: s.PageSize,
		Loading:  s.Loading,
		Err:      s.Err,
		Cart:     FromCartLines(s.Cart),
	}
}

func FromCartLines(lines []state.CartLine) CartResponse {
	out := make([]CartLineResponse, len(lines))
	var totalCents int64
	for i, l := range lines {
		out[i] = CartLineResponse{
			ItemID:          l.ItemID,
			Name:            l.Name,
			Plate:           l.Plate,
			PriceAtAddCents: l.PriceAtAdd.Cents(),
			PriceAtAdd:      l.PriceAtAdd.String(),
		}
		totalCents += l.PriceAtAdd.Cents()
	}
	return CartResponse{
		Lines:      out,
		TotalCents: totalCents,
		Total:      animal.MustMoney(totalCents).String(),
	}
}

func fromItems(items []state.Item) []StoreItemResponse {
	out := make([]StoreItemResponse, len(items))
	for i, it := range items {
		out[i] = StoreItemResponse{
			ID:         it.ID,
			Name:       it.Name,
			Plate:      it.Plate,
			Sex:        it.Sex.String(),
			Status:     it.Status.String(),
			PriceCents: it.Price.Cents(),
			BirthDate:  it.BirthDate,
		}
	}
	return out
}
