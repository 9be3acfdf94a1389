//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"corral-store/internal/infra"
	"corral-store/internal/pkg/cache"
	"corral-store/internal/usecase/queries"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnimalReadStore struct {
	listing   []*readmodel.AnimalRM
	listCalls int
	listErr   error
	byID      map[uuid.UUID]*readmodel.AnimalRM
}

func (f *fakeAnimalReadStore) ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

func (f *fakeAnimalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error) {
	if rm, ok := f.byID[id]; ok {
		return rm, nil
	}
	return nil, infra.WrapRepoErr("animal not found", nil, infra.KindNotFound)
}

func (f *fakeAnimalReadStore) FindPedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error) {
	if rm, ok := f.byID[id]; ok {
		return &readmodel.PedigreeRM{Animal: *rm}, nil
	}
	return nil, infra.WrapRepoErr("animal not found", nil, infra.KindNotFound)
}

func listedAnimal(name, sex string) *readmodel.AnimalRM {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &readmodel.AnimalRM{
		ID:         uuid.New(),
		Name:       name,
		Plate:      "P-" + name,
		Sex:        sex,
		PriceCents: 15000,
		Status:     "available",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newQueries(store *fakeAnimalReadStore) queries.AnimalQueries {
	return queries.NewAnimalQueries(store, cache.NewMemoryCache(), time.Minute)
}

func TestListAvailable_ServesFromCacheOnRepeat(t *testing.T) {
	store := &fakeAnimalReadStore{listing: []*readmodel.AnimalRM{
		listedAnimal("Zeus", "male"),
		listedAnimal("Hera", "female"),
	}}
	q := newQueries(store)
	ctx := context.Background()

	first, err := q.ListAvailable(ctx)
	require.NoError(t, err)
	second, err := q.ListAvailable(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, 1, store.listCalls, "second read must come from cache")
}

func TestListAvailable_InvalidationForcesRefetch(t *testing.T) {
	store := &fakeAnimalReadStore{listing: []*readmodel.AnimalRM{listedAnimal("Zeus", "male")}}
	q := newQueries(store)
	ctx := context.Background()

	_, err := q.ListAvailable(ctx)
	require.NoError(t, err)

	q.InvalidateListing(ctx)
	store.listing = append(store.listing, listedAnimal("Hera", "female"))

	refreshed, err := q.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)
	assert.Equal(t, 2, store.listCalls)
}

func TestListFiltered(t *testing.T) {
	store := &fakeAnimalReadStore{listing: []*readmodel.AnimalRM{
		listedAnimal("Zeus", "male"),
		listedAnimal("Hera", "female"),
		listedAnimal("Apollo", "male"),
	}}
	q := newQueries(store)
	ctx := context.Background()

	t.Run("sex filter", func(t *testing.T) {
		page, err := q.ListFiltered(ctx, "male", 1, 8)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalItems)
		for _, rm := range page.Items {
			assert.Equal(t, "male", rm.Sex)
		}
	})

	t.Run("empty filter means all", func(t *testing.T) {
		page, err := q.ListFiltered(ctx, "", 1, 8)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalItems)
		assert.Equal(t, queries.FilterAll, page.Filter)
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		_, err := q.ListFiltered(ctx, "unknown", 1, 8)
		require.ErrorIs(t, err, queries.ErrInvalidFilter)
	})

	t.Run("out-of-range page clamps", func(t *testing.T) {
		page, err := q.ListFiltered(ctx, queries.FilterAll, 99, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Items, 1)
	})
}

func TestGetByID(t *testing.T) {
	rm := listedAnimal("Zeus", "male")
	store := &fakeAnimalReadStore{byID: map[uuid.UUID]*readmodel.AnimalRM{rm.ID: rm}}
	q := newQueries(store)

	got, err := q.GetByID(context.Background(), rm.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.ID, got.ID)

	_, err = q.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, queries.ErrAnimalNotFound)
}
