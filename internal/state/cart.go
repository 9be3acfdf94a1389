package state

import (
	"errors"

	"corral-store/internal/domain/animal"

	"github.com/google/uuid"
)

var ErrInvalidItem = errors.New("item is missing or not available for sale")

// Cart is the pending-sale slice of a session's state, expressed entirely
// as patches against the store's Cart field. It holds at most one line per
// item identity.
type Cart struct {
	store *Store
}

func NewCart(store *Store) *Cart {
	return &Cart{store: store}
}

// Add appends a line for the item with its price captured now. Adding an
// item already in the cart is a no-op: no duplicate line, and the original
// price snapshot is kept. Items that are absent or not Available are
// rejected before any state change.
func (c *Cart) Add(item Item) error {
	if item.ID == uuid.Nil || item.Status != animal.StatusAvailable {
		c.setError("item is not available for sale")
		return ErrInvalidItem
	}

	c.store.applyFn(func(current AppState) (Patch, bool) {
		for _, line := range current.Cart {
			if line.ItemID == item.ID {
				return Patch{}, false
			}
		}
		next := append(cloneLines(current.Cart), CartLine{
			ItemID:     item.ID,
			Name:       item.Name,
			Plate:      item.Plate,
			PriceAtAdd: item.Price,
		})
		clearErr := ""
		return Patch{Cart: &next, Err: &clearErr}, true
	})
	return nil
}

// Remove drops the line with the given identity. Removing an absent item
// is a no-op, not an error, and triggers no notification.
func (c *Cart) Remove(itemID uuid.UUID) {
	c.store.applyFn(func(current AppState) (Patch, bool) {
		next := make([]CartLine, 0, len(current.Cart))
		for _, line := range current.Cart {
			if line.ItemID != itemID {
				next = append(next, line)
			}
		}
		if len(next) == len(current.Cart) {
			return Patch{}, false
		}
		return Patch{Cart: &next}, true
	})
}

func (c *Cart) Clear() {
	empty := []CartLine{}
	c.store.Apply(Patch{Cart: &empty})
}

// Lines returns an independent snapshot of the current cart. Checkout
// reads this once at the start of an attempt and never re-reads.
func (c *Cart) Lines() []CartLine {
	return c.store.Snapshot().Cart
}

func (c *Cart) Len() int {
	return len(c.store.Snapshot().Cart)
}

// Total sums the captured line prices. Catalog prices are never consulted.
func (c *Cart) Total() animal.Money {
	var total animal.Money
	for _, line := range c.store.Snapshot().Cart {
		total = total.Add(line.PriceAtAdd)
	}
	return total
}

func (c *Cart) setError(msg string) {
	c.store.Apply(Patch{Err: &msg})
}
