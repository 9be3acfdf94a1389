//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/domain/user"
	"corral-store/internal/infra"
	"corral-store/internal/pkg/clock"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/commands"
	"corral-store/internal/usecase/readmodel"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventoryFixture struct {
	animals     *fakeAnimalRepo
	invalidator *fakeInvalidator
	clock       *clock.MockClock
	uc          commands.InventoryCommands
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		animals:     &fakeAnimalRepo{byID: map[uuid.UUID]*readmodel.AnimalRM{}},
		invalidator: &fakeInvalidator{},
		clock:       clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewInventoryUseCase(f.animals, f.invalidator, usecase.NewRoleAuthorizer(), f.clock)
	return f
}

func validInput() commands.AnimalInput {
	return commands.AnimalInput{
		Name:       "Zeus",
		Plate:      "BR-0042",
		Sex:        "male",
		PriceCents: 15000,
	}
}

func (f *inventoryFixture) seedAnimal(t *testing.T) *readmodel.AnimalRM {
	t.Helper()
	plate := mustPlate(t, "BR-0001")
	entity, err := animal.NewAnimal(&animal.Services{Clock: f.clock}, "Hera", plate, animal.SexFemale, nil, animal.MustMoney(9999), nil, nil)
	require.NoError(t, err)
	rm := animalToRM(entity)
	f.animals.byID[rm.ID] = rm
	return rm
}

func mustPlate(t *testing.T, v string) animal.Plate {
	t.Helper()
	p, err := animal.NewPlate(v)
	require.NoError(t, err)
	return p
}

func TestCreateAnimal(t *testing.T) {
	t.Run("seller creates a listing", func(t *testing.T) {
		f := newInventoryFixture()

		rm, err := f.uc.CreateAnimal(context.Background(), user.RoleSeller, validInput())

		require.NoError(t, err)
		assert.Equal(t, "Zeus", rm.Name)
		assert.Equal(t, "available", rm.Status)
		assert.Equal(t, int64(15000), rm.PriceCents)
		assert.Equal(t, 1, f.invalidator.calls)
	})

	t.Run("viewer is rejected before any write", func(t *testing.T) {
		f := newInventoryFixture()

		_, err := f.uc.CreateAnimal(context.Background(), user.RoleViewer, validInput())

		require.ErrorIs(t, err, commands.ErrInventoryUnauthorized)
		assert.Empty(t, f.animals.created)
	})

	t.Run("domain validation failures are marked", func(t *testing.T) {
		f := newInventoryFixture()
		in := validInput()
		in.Name = ""

		_, err := f.uc.CreateAnimal(context.Background(), user.RoleSeller, in)

		require.ErrorIs(t, err, commands.ErrDomainValidation)
		require.ErrorIs(t, err, animal.ErrEmptyName)
	})

	t.Run("duplicate plate surfaces as a conflict", func(t *testing.T) {
		f := newInventoryFixture()
		f.animals.createErr = infra.WrapRepoErr("unique violation", errors.New("23505"), infra.KindDuplicateKey)

		_, err := f.uc.CreateAnimal(context.Background(), user.RoleSeller, validInput())

		require.ErrorIs(t, err, commands.ErrDuplicatePlate)
	})
}

func TestUpdateAnimal(t *testing.T) {
	t.Run("edits the listing fields", func(t *testing.T) {
		f := newInventoryFixture()
		seeded := f.seedAnimal(t)

		in := validInput()
		in.Name = "Hera II"
		rm, err := f.uc.UpdateAnimal(context.Background(), user.RoleSeller, seeded.ID, in)

		require.NoError(t, err)
		assert.Equal(t, "Hera II", rm.Name)
		require.Len(t, f.animals.updated, 1)
		assert.Equal(t, seeded.ID, f.animals.updated[0].ID())
		assert.Equal(t, 1, f.invalidator.calls)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newInventoryFixture()

		_, err := f.uc.UpdateAnimal(context.Background(), user.RoleSeller, uuid.New(), validInput())

		require.ErrorIs(t, err, commands.ErrAnimalNotFound)
	})

	t.Run("viewer is rejected", func(t *testing.T) {
		f := newInventoryFixture()
		seeded := f.seedAnimal(t)

		_, err := f.uc.UpdateAnimal(context.Background(), user.RoleViewer, seeded.ID, validInput())

		require.ErrorIs(t, err, commands.ErrInventoryUnauthorized)
	})
}

func TestDeleteAnimal(t *testing.T) {
	t.Run("admin soft-deletes", func(t *testing.T) {
		f := newInventoryFixture()
		seeded := f.seedAnimal(t)

		err := f.uc.DeleteAnimal(context.Background(), user.RoleAdmin, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{seeded.ID}, f.animals.deleted)
		assert.Equal(t, 1, f.invalidator.calls)
	})

	t.Run("seller cannot delete", func(t *testing.T) {
		f := newInventoryFixture()
		seeded := f.seedAnimal(t)

		err := f.uc.DeleteAnimal(context.Background(), user.RoleSeller, seeded.ID)

		require.ErrorIs(t, err, commands.ErrInventoryUnauthorized)
		assert.Empty(t, f.animals.deleted)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newInventoryFixture()

		err := f.uc.DeleteAnimal(context.Background(), user.RoleAdmin, uuid.New())

		require.ErrorIs(t, err, commands.ErrAnimalNotFound)
	})
}
