package state

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"corral-store/internal/domain/animal"

	"github.com/google/uuid"
)

// Item is the slice of an inventory record the storefront state needs:
// enough to render a card and to capture a cart line.
type Item struct {
	ID        uuid.UUID
	Name      string
	Plate     string
	Sex       animal.Sex
	Status    animal.Status
	Price     animal.Money
	BirthDate *time.Time
}

// CartLine references one item pending sale. PriceAtAdd is frozen when the
// line is created; later catalog price changes never reach it.
type CartLine struct {
	ItemID     uuid.UUID
	Name       string
	Plate      string
	PriceAtAdd animal.Money
}

// AppState is the single source of truth for one storefront session.
type AppState struct {
	Animals  []Item
	Filtered []Item
	Filter   string
	Page     int
	PageSize int
	Loading  bool
	Err      string
	Cart     []CartLine
}

// Patch is a partial AppState update. Nil fields are left untouched; set
// fields replace the current value wholesale (single-level merge,
// last-write-wins).
type Patch struct {
	Animals  *[]Item
	Filtered *[]Item
	Filter   *string
	Page     *int
	PageSize *int
	Loading  *bool
	Err      *string
	Cart     *[]CartLine
}

type Listener func(AppState)

type subscriber struct {
	fn      Listener
	removed atomic.Bool
}

// Store holds AppState and fans every update out to its subscribers.
//
// One Apply runs to completion, including notification, before the next
// starts. Listeners may subscribe and unsubscribe from inside a
// notification, but must not call Apply synchronously: a re-entrant Apply
// deadlocks by construction rather than silently nesting cycles.
type Store struct {
	mu         sync.RWMutex // guards state and subs
	dispatchMu sync.Mutex   // serializes whole update+notify cycles
	state      AppState
	subs       []*subscriber
	logger     *slog.Logger
}

func NewStore(initial AppState, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:  initial,
		logger: logger,
	}
}

// Snapshot returns an independent copy of the current state. Mutating the
// returned value never affects the store or other snapshots.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Apply merges the patch into the current state and synchronously notifies
// every subscriber with the resulting snapshot, exactly once.
func (s *Store) Apply(p Patch) {
	s.applyFn(func(AppState) (Patch, bool) {
		return p, true
	})
}

// applyFn computes a patch from the current state and applies it in the
// same cycle, so read-modify-write sequences cannot interleave. Returning
// false skips both the merge and the notification.
func (s *Store) applyFn(fn func(current AppState) (Patch, bool)) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	p, ok := fn(s.state)
	if !ok {
		s.mu.Unlock()
		return
	}
	merge(&s.state, p)
	snapshot := cloneState(s.state)
	active := make([]*subscriber, len(s.subs))
	copy(active, s.subs)
	s.mu.Unlock()

	// Listeners registered after this point are first notified on the next
	// cycle; listeners removed mid-cycle are skipped (checked per call).
	for _, sub := range active {
		if sub.removed.Load() {
			continue
		}
		s.notify(sub, snapshot)
	}
}

func (s *Store) notify(sub *subscriber, snapshot AppState) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("state listener panicked", "panic", r)
		}
	}()
	sub.fn(snapshot)
}

// Subscribe registers a listener for every future snapshot and returns its
// unsubscribe function. Unsubscribing guarantees zero further invocations,
// even when invoked from inside another listener during a fan-out.
func (s *Store) Subscribe(fn Listener) func() {
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.removed.Store(true)
			s.compact()
		})
	}
}

// compact drops removed subscribers from the slice. Removal itself is the
// atomic flag; this only reclaims memory, so it can take the lock lazily.
func (s *Store) compact() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if !sub.removed.Load() {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}

func merge(dst *AppState, p Patch) {
	if p.Animals != nil {
		dst.Animals = *p.Animals
	}
	if p.Filtered != nil {
		dst.Filtered = *p.Filtered
	}
	if p.Filter != nil {
		dst.Filter = *p.Filter
	}
	if p.Page != nil {
		dst.Page = *p.Page
	}
	if p.PageSize != nil {
		dst.PageSize = *p.PageSize
	}
	if p.Loading != nil {
		dst.Loading = *p.Loading
	}
	if p.Err != nil {
		dst.Err = *p.Err
	}
	if p.Cart != nil {
		dst.Cart = *p.Cart
	}
}

func cloneState(src AppState) AppState {
	out := src
	out.Animals = cloneItems(src.Animals)
	out.Filtered = cloneItems(src.Filtered)
	out.Cart = cloneLines(src.Cart)
	return out
}

func cloneItems(in []Item) []Item {
	if in == nil {
		return nil
	}
	out := make([]Item, len(in))
	copy(out, in)
	return out
}

func cloneLines(in []CartLine) []CartLine {
	if in == nil {
		return nil
	}
	out := make([]CartLine, len(in))
	copy(out, in)
	return out
}
