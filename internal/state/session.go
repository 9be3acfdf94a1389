package state

import (
	"log/slog"
	"sync"
	"time"

	"corral-store/internal/pkg/clock"

	"github.com/google/uuid"
)

// Session owns one user's reactive store and its cart view.
type Session struct {
	UserID uuid.UUID
	Store  *Store
	Cart   *Cart

	lastSeen time.Time
}

// Registry keeps one session per authenticated user, evicting sessions
// that have been idle longer than the TTL. Eviction runs inline on access
// rather than in a background goroutine: session count is bounded by the
// number of active users.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	clock    clock.Clock
	logger   *slog.Logger
	onCreate func(*Session)
}

// NewRegistry builds a registry. onCreate runs once for every new session,
// after its store exists but before it is returned to any caller; use it
// to seed state and attach standing subscribers. It may be nil.
func NewRegistry(ttl time.Duration, clk clock.Clock, logger *slog.Logger, onCreate func(*Session)) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		clock:    clk,
		logger:   logger,
		onCreate: onCreate,
	}
}

// GetOrCreate returns the user's session, creating it on first access.
func (r *Registry) GetOrCreate(userID uuid.UUID, initial AppState) *Session {
	r.mu.Lock()
	r.evictExpiredLocked()

	sess, ok := r.sessions[userID]
	if ok {
		sess.lastSeen = r.clock.Now()
		r.mu.Unlock()
		return sess
	}

	store := NewStore(initial, r.logger)
	sess = &Session{
		UserID:   userID,
		Store:    store,
		Cart:     NewCart(store),
		lastSeen: r.clock.Now(),
	}
	r.sessions[userID] = sess
	r.mu.Unlock()

	if r.onCreate != nil {
		r.onCreate(sess)
	}
	return sess
}

// Get returns the user's session if one exists and is not expired.
func (r *Registry) Get(userID uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked()

	sess, ok := r.sessions[userID]
	if ok {
		sess.lastSeen = r.clock.Now()
	}
	return sess, ok
}

func (r *Registry) Drop(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) evictExpiredLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.clock.Now().Add(-r.ttl)
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			r.logger.Debug("session evicted", "user_id", id)
		}
	}
}
