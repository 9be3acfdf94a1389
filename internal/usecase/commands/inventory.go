package commands

import (
	"context"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/domain/user"
	"corral-store/internal/pkg/clock"
	"corral-store/internal/pkg/errs"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInventoryUnauthorized = errs.New("not authorized for inventory changes")
	ErrAnimalNotFound        = errs.New("animal not found")
	ErrDuplicatePlate        = errs.New("plate number already in use")
	ErrDomainValidation      = errs.New("domain validation error")
	ErrPersistenceFailed     = errs.New("persistence operation failed")
)

type AnimalInput struct {
	Name       string
	Plate      string
	Sex        string
	BirthDate  *time.Time
	PriceCents int64
	FatherID   *uuid.UUID
	MotherID   *uuid.UUID
}

type InventoryCommands interface {
	CreateAnimal(ctx context.Context, role user.Role, in AnimalInput) (*readmodel.AnimalRM, error)
	UpdateAnimal(ctx context.Context, role user.Role, id uuid.UUID, in AnimalInput) (*readmodel.AnimalRM, error)
	// DeleteAnimal soft-deletes: the row keeps its identity so recorded
	// sale details stay consistent.
	DeleteAnimal(ctx context.Context, role user.Role, id uuid.UUID) error
}

type inventoryUseCaseImpl struct {
	animalRepo  AnimalRepository
	invalidator ListingInvalidator
	authorizer  usecase.Authorizer
	clock       clock.Clock
}

func NewInventoryUseCase(
	animalRepo AnimalRepository,
	invalidator ListingInvalidator,
	authorizer usecase.Authorizer,
	clk clock.Clock,
) InventoryCommands {
	return &inventoryUseCaseImpl{
		animalRepo:  animalRepo,
		invalidator: invalidator,
		authorizer:  authorizer,
		clock:       clk,
	}
}

func (u *inventoryUseCaseImpl) CreateAnimal(ctx context.Context, role user.Role, in AnimalInput) (*readmodel.AnimalRM, error) {
	if !u.authorizer.Can(role, usecase.ActionCreateItem) {
		return nil, ErrInventoryUnauthorized
	}

	entity, err := u.buildAnimal(in)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := u.animalRepo.Create(ctx, entity)
	if err != nil {
		if infraDuplicate(err) {
			return nil, ErrDuplicatePlate
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	u.invalidator.InvalidateListing(ctx)

	// Read-after-write so the caller sees the row with parent names joined.
	created, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return created, nil
}

func (u *inventoryUseCaseImpl) UpdateAnimal(ctx context.Context, role user.Role, id uuid.UUID, in AnimalInput) (*readmodel.AnimalRM, error) {
	if !u.authorizer.Can(role, usecase.ActionEditItem) {
		return nil, ErrInventoryUnauthorized
	}

	currentRM, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		if infraNotFound(err) {
			return nil, ErrAnimalNotFound
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	entity, err := reconstructFromRM(currentRM)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	plate, err := animal.NewPlate(in.Plate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	sex, err := animal.NewSex(in.Sex)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	price, err := animal.NewMoney(in.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := entity.ApplyListing(in.Name, plate, sex, in.BirthDate, price, in.FatherID, in.MotherID, u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.animalRepo.Update(ctx, entity); err != nil {
		if infraDuplicate(err) {
			return nil, ErrDuplicatePlate
		}
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	u.invalidator.InvalidateListing(ctx)

	updated, err := u.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return updated, nil
}

func (u *inventoryUseCaseImpl) DeleteAnimal(ctx context.Context, role user.Role, id uuid.UUID) error {
	if !u.authorizer.Can(role, usecase.ActionDeleteItem) {
		return ErrInventoryUnauthorized
	}

	if _, err := u.animalRepo.FindByID(ctx, id); err != nil {
		if infraNotFound(err) {
			return ErrAnimalNotFound
		}
		return errs.Mark(err, ErrPersistenceFailed)
	}

	if err := u.animalRepo.SoftDelete(ctx, id, u.clock.Now()); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}

	u.invalidator.InvalidateListing(ctx)
	return nil
}

func (u *inventoryUseCaseImpl) buildAnimal(in AnimalInput) (*animal.Animal, error) {
	plate, err := animal.NewPlate(in.Plate)
	if err != nil {
		return nil, err
	}
	sex, err := animal.NewSex(in.Sex)
	if err != nil {
		return nil, err
	}
	price, err := animal.NewMoney(in.PriceCents)
	if err != nil {
		return nil, err
	}

	return animal.NewAnimal(
		&animal.Services{Clock: u.clock},
		in.Name,
		plate,
		sex,
		in.BirthDate,
		price,
		in.FatherID,
		in.MotherID,
	)
}

func reconstructFromRM(rm *readmodel.AnimalRM) (*animal.Animal, error) {
	plate, err := animal.NewPlate(rm.Plate)
	if err != nil {
		return nil, err
	}
	sex, err := animal.NewSex(rm.Sex)
	if err != nil {
		return nil, err
	}
	status, err := animal.NewStatus(rm.Status)
	if err != nil {
		return nil, err
	}
	price, err := animal.NewMoney(rm.PriceCents)
	if err != nil {
		return nil, err
	}

	return animal.ReconstructAnimal(
		rm.ID,
		rm.Name,
		plate,
		sex,
		rm.BirthDate,
		price,
		rm.FatherID,
		rm.MotherID,
		status,
		nil,
		rm.CreatedAt,
		rm.UpdatedAt,
	), nil
}
