package usecase

import (
	"context"

	"corral-store/internal/domain/animal"
	"corral-store/internal/state"
	"corral-store/internal/usecase/queries"
	"corral-store/internal/usecase/readmodel"
)

// CatalogLoader seeds and refilters a session's reactive store from the
// catalog read side. Loading and failure are part of the state itself so
// subscribers render every phase of a fetch.
type CatalogLoader struct {
	animals  queries.AnimalQueries
	pageSize int
}

func NewCatalogLoader(animals queries.AnimalQueries, pageSize int) *CatalogLoader {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &CatalogLoader{animals: animals, pageSize: pageSize}
}

// InitialState is what a fresh session starts from, before the first Load.
func (l *CatalogLoader) InitialState() state.AppState {
	return state.AppState{
		Filter:   queries.FilterAll,
		Page:     1,
		PageSize: l.pageSize,
		Loading:  true,
	}
}

// Load fetches the listing and patches the store: a loading patch first,
// then either the items with the filter re-applied or the failure message.
func (l *CatalogLoader) Load(ctx context.Context, s *state.Store) error {
	loading := true
	clearErr := ""
	s.Apply(state.Patch{Loading: &loading, Err: &clearErr})

	rms, err := l.animals.ListAvailable(ctx)

	done := false
	if err != nil {
		msg := "failed to load the catalog"
		s.Apply(state.Patch{Loading: &done, Err: &msg})
		return err
	}

	items := make([]state.Item, 0, len(rms))
	for _, rm := range rms {
		item, convErr := itemFromRM(rm)
		if convErr != nil {
			continue
		}
		items = append(items, item)
	}

	snapshot := s.Snapshot()
	filtered := applyFilter(items, snapshot.Filter)
	page := 1
	s.Apply(state.Patch{
		Animals:  &items,
		Filtered: &filtered,
		Page:     &page,
		Loading:  &done,
	})
	return nil
}

// SetFilter recomputes the filtered view and resets to the first page.
// Unknown filter values fall back to showing everything.
func (l *CatalogLoader) SetFilter(s *state.Store, filter string) {
	if filter != queries.FilterAll {
		if _, err := animal.NewSex(filter); err != nil {
			filter = queries.FilterAll
		}
	}
	snapshot := s.Snapshot()
	filtered := applyFilter(snapshot.Animals, filter)
	page := 1
	s.Apply(state.Patch{Filter: &filter, Filtered: &filtered, Page: &page})
}

// SetPage clamps to the valid page range for the current filtered view.
func (l *CatalogLoader) SetPage(s *state.Store, page int) {
	snapshot := s.Snapshot()
	pageSize := snapshot.PageSize
	if pageSize <= 0 {
		pageSize = l.pageSize
	}
	totalPages := (len(snapshot.Filtered) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	s.Apply(state.Patch{Page: &page})
}

func applyFilter(items []state.Item, filter string) []state.Item {
	if filter == queries.FilterAll {
		return items
	}
	out := make([]state.Item, 0, len(items))
	for _, it := range items {
		if it.Sex.String() == filter {
			out = append(out, it)
		}
	}
	return out
}

func itemFromRM(rm *readmodel.AnimalRM) (state.Item, error) {
	sex, err := animal.NewSex(rm.Sex)
	if err != nil {
		return state.Item{}, err
	}
	status, err := animal.NewStatus(rm.Status)
	if err != nil {
		return state.Item{}, err
	}
	price, err := animal.NewMoney(rm.PriceCents)
	if err != nil {
		return state.Item{}, err
	}
	return state.Item{
		ID:        rm.ID,
		Name:      rm.Name,
		Plate:     rm.Plate,
		Sex:       sex,
		Status:    status,
		Price:     price,
		BirthDate: rm.BirthDate,
	}, nil
}
