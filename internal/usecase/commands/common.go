package commands

import (
	"time"

	"corral-store/internal/domain/customer"
	"corral-store/internal/infra"
)

func infraNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func infraDuplicate(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}

func newCustomer(buyer BuyerInput, now time.Time) (*customer.Customer, error) {
	return customer.NewCustomer(buyer.FullName, buyer.DocID, buyer.Phone, buyer.Email, now)
}
