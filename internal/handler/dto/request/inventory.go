package request

import (
	"time"

	"corral-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type AnimalRequest struct {
	Name       string     `json:"name" binding:"required"`
	Plate      string     `json:"plate" binding:"required,max=32"`
	Sex        string     `json:"sex" binding:"required,oneof=male female"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	PriceCents int64      `json:"priceCents" binding:"min=0"`
	FatherID   *uuid.UUID `json:"fatherId,omitempty"`
	MotherID   *uuid.UUID `json:"motherId,omitempty"`
}

func (r *AnimalRequest) ToInput() commands.AnimalInput {
	return commands.AnimalInput{
		Name:       r.Name,
		Plate:      r.Plate,
		Sex:        r.Sex,
		BirthDate:  r.BirthDate,
		PriceCents: r.PriceCents,
		FatherID:   r.FatherID,
		MotherID:   r.MotherID,
	}
}
