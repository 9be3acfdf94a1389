//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"corral-store/internal/pkg/errs"
	"corral-store/internal/state"
	"corral-store/internal/usecase"
	"corral-store/internal/usecase/queries"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnimalQueries struct {
	listing []*readmodel.AnimalRM
	listErr error
}

func (f *fakeAnimalQueries) ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

func (f *fakeAnimalQueries) ListFiltered(ctx context.Context, filter string, page, pageSize int) (*queries.ListingPage, error) {
	return nil, nil
}

func (f *fakeAnimalQueries) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error) {
	return nil, nil
}

func (f *fakeAnimalQueries) Pedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error) {
	return nil, nil
}

func (f *fakeAnimalQueries) InvalidateListing(ctx context.Context) {}

func listed(name, sex string) *readmodel.AnimalRM {
	return &readmodel.AnimalRM{
		ID:         uuid.New(),
		Name:       name,
		Plate:      "P-" + name,
		Sex:        sex,
		PriceCents: 15000,
		Status:     "available",
	}
}

func TestCatalogLoader_LoadPopulatesStore(t *testing.T) {
	q := &fakeAnimalQueries{listing: []*readmodel.AnimalRM{
		listed("Zeus", "male"),
		listed("Hera", "female"),
	}}
	loader := usecase.NewCatalogLoader(q, 8)
	store := state.NewStore(loader.InitialState(), nil)

	require.NoError(t, loader.Load(context.Background(), store))

	snapshot := store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.Err)
	assert.Len(t, snapshot.Animals, 2)
	assert.Len(t, snapshot.Filtered, 2, "default filter shows everything")
	assert.Equal(t, 1, snapshot.Page)
}

func TestCatalogLoader_LoadFailureSetsError(t *testing.T) {
	q := &fakeAnimalQueries{listErr: errs.New("backend down")}
	loader := usecase.NewCatalogLoader(q, 8)
	store := state.NewStore(loader.InitialState(), nil)

	err := loader.Load(context.Background(), store)

	require.Error(t, err)
	snapshot := store.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.NotEmpty(t, snapshot.Err)
	assert.Empty(t, snapshot.Animals)
}

func TestCatalogLoader_SetFilterRecomputesAndResetsPage(t *testing.T) {
	q := &fakeAnimalQueries{listing: []*readmodel.AnimalRM{
		listed("Zeus", "male"),
		listed("Hera", "female"),
		listed("Apollo", "male"),
	}}
	loader := usecase.NewCatalogLoader(q, 2)
	store := state.NewStore(loader.InitialState(), nil)
	require.NoError(t, loader.Load(context.Background(), store))

	loader.SetPage(store, 2)
	require.Equal(t, 2, store.Snapshot().Page)

	loader.SetFilter(store, "female")

	snapshot := store.Snapshot()
	assert.Equal(t, "female", snapshot.Filter)
	assert.Len(t, snapshot.Filtered, 1)
	assert.Equal(t, 1, snapshot.Page, "filter change rewinds to the first page")
	assert.Len(t, snapshot.Animals, 3, "the unfiltered list is kept")
}

func TestCatalogLoader_SetFilterUnknownFallsBackToAll(t *testing.T) {
	q := &fakeAnimalQueries{listing: []*readmodel.AnimalRM{listed("Zeus", "male")}}
	loader := usecase.NewCatalogLoader(q, 8)
	store := state.NewStore(loader.InitialState(), nil)
	require.NoError(t, loader.Load(context.Background(), store))

	loader.SetFilter(store, "neither")

	snapshot := store.Snapshot()
	assert.Equal(t, queries.FilterAll, snapshot.Filter)
	assert.Len(t, snapshot.Filtered, 1)
}

func TestCatalogLoader_SetPageClamps(t *testing.T) {
	q := &fakeAnimalQueries{listing: []*readmodel.AnimalRM{
		listed("Zeus", "male"),
		listed("Hera", "female"),
		listed("Apollo", "male"),
	}}
	loader := usecase.NewCatalogLoader(q, 2)
	store := state.NewStore(loader.InitialState(), nil)
	require.NoError(t, loader.Load(context.Background(), store))

	loader.SetPage(store, 99)
	assert.Equal(t, 2, store.Snapshot().Page)

	loader.SetPage(store, -3)
	assert.Equal(t, 1, store.Snapshot().Page)
}
