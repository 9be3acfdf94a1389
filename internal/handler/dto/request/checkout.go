package request

import "corral-store/internal/usecase/commands"

type CheckoutRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	DocID    string  `json:"docId"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r *CheckoutRequest) ToInput() commands.BuyerInput {
	return commands.BuyerInput{
		FullName: r.FullName,
		DocID:    r.DocID,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}
