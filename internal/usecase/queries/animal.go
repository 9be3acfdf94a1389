package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"corral-store/internal/domain/animal"
	"corral-store/internal/pkg/cache"
	"corral-store/internal/pkg/errs"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrListingUnavailable = errs.New("catalog listing unavailable")
	ErrAnimalNotFound     = errs.New("animal not found")
	ErrInvalidFilter      = errs.New("invalid sex filter")
)

const listingCacheKey = "catalog:listing"

// FilterAll matches every sex; the other accepted values are the Sex
// constants themselves.
const FilterAll = "all"

// ListingPage is one page of the filtered public gallery.
type ListingPage struct {
	Items      []*readmodel.AnimalRM `json:"items"`
	Filter     string                `json:"filter"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
}

type AnimalQueries interface {
	// ListAvailable returns every listable animal, served from the
	// listing cache when warm.
	ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error)
	// ListFiltered applies the sex filter and pages the result. Pages are
	// 1-based; out-of-range pages clamp to the nearest valid page.
	ListFiltered(ctx context.Context, filter string, page, pageSize int) (*ListingPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error)
	Pedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error)
	// InvalidateListing drops the cached gallery. Write paths call this
	// after any change that affects what the public listing shows.
	InvalidateListing(ctx context.Context)
}

type AnimalReadStore interface {
	// ListAvailable returns animals in Available status, soft-deleted
	// rows excluded, newest first.
	ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error)
	FindPedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error)
}

type animalQueriesImpl struct {
	store      AnimalReadStore
	cache      cache.Cache
	listingTTL time.Duration
}

func NewAnimalQueries(store AnimalReadStore, c cache.Cache, listingTTL time.Duration) AnimalQueries {
	return &animalQueriesImpl{
		store:      store,
		cache:      c,
		listingTTL: listingTTL,
	}
}

func (q *animalQueriesImpl) ListAvailable(ctx context.Context) ([]*readmodel.AnimalRM, error) {
	payload, err := q.cache.GetOrSet(ctx, listingCacheKey, q.listingTTL, func() ([]byte, error) {
		items, err := q.store.ListAvailable(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(items)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrListingUnavailable)
	}

	var items []*readmodel.AnimalRM
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, errs.Mark(err, ErrListingUnavailable)
	}
	return items, nil
}

func (q *animalQueriesImpl) ListFiltered(ctx context.Context, filter string, page, pageSize int) (*ListingPage, error) {
	if filter == "" {
		filter = FilterAll
	}
	if filter != FilterAll {
		if _, err := animal.NewSex(filter); err != nil {
			return nil, ErrInvalidFilter
		}
	}

	items, err := q.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterBySex(items, filter)
	return paginate(filtered, filter, page, pageSize), nil
}

func (q *animalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.AnimalRM, error) {
	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrAnimalNotFound)
	}
	return rm, nil
}

func (q *animalQueriesImpl) Pedigree(ctx context.Context, id uuid.UUID) (*readmodel.PedigreeRM, error) {
	rm, err := q.store.FindPedigree(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrAnimalNotFound)
	}
	return rm, nil
}

func (q *animalQueriesImpl) InvalidateListing(ctx context.Context) {
	if err := q.cache.Delete(ctx, listingCacheKey); err != nil {
		slog.Warn("failed to invalidate listing cache", "error", err)
	}
}

func filterBySex(items []*readmodel.AnimalRM, filter string) []*readmodel.AnimalRM {
	if filter == FilterAll {
		return items
	}
	out := make([]*readmodel.AnimalRM, 0, len(items))
	for _, rm := range items {
		if rm.Sex == filter {
			out = append(out, rm)
		}
	}
	return out
}

func paginate(items []*readmodel.AnimalRM, filter string, page, pageSize int) *ListingPage {
	if pageSize <= 0 {
		pageSize = 8
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return &ListingPage{
		Items:      items[start:end],
		Filter:     filter,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}
