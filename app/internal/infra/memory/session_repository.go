package memory

import (
	"context"
	"sync"
	"time"

	domsession "example.com/beadwork-storefront/app/internal/domain/session"
)

// SessionRepository keeps sessions in process memory. Sessions idle for
// longer than the TTL are dropped by Sweep; everything is lost on restart.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domsession.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*domsession.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domsession.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return domsession.ErrSessionExists
	}
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domsession.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.live(id)
	if !ok {
		return nil, domsession.ErrSessionNotFound
	}
	s.LastSeen = r.now()
	return s.Clone(), nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, fn func(s *domsession.Session) error) (*domsession.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.live(id)
	if !ok {
		return nil, domsession.ErrSessionNotFound
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.LastSeen = r.now()
	r.sessions[id] = working
	return working.Clone(), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// RunJanitor sweeps every interval until ctx is done. onSweep, when set,
// receives the number of sessions removed by each sweep.
func (r *SessionRepository) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := r.Sweep()
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

// live must be called with mu held.
func (r *SessionRepository) live(id string) (*domsession.Session, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expired(s) {
		delete(r.sessions, id)
		return nil, false
	}
	return s, true
}

func (r *SessionRepository) expired(s *domsession.Session) bool {
	return r.ttl > 0 && r.now().Sub(s.LastSeen) > r.ttl
}
