// internal/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/metrics"

	"github.com/google/uuid"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps live sessions in memory and evicts idle ones.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  *Factory
	ttl      time.Duration
	now      func() time.Time
	logger   logger.Logger
}

func NewStore(factory *Factory, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.ForComponent(log, "session-store"),
	}
}

// Create starts a session with a fresh identifier.
func (s *Store) Create() *Session {
	id := uuid.NewString()
	sess := s.factory.Build(id)

	s.mu.Lock()
	s.sessions[id] = &entry{session: sess, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	s.logger.Debug("session created", map[string]interface{}{"sessionId": id})
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || s.expired(e) {
		return nil, errors.NewSessionNotFoundError(id)
	}
	e.lastSeen = s.now()
	return e.session, nil
}

// GetOrCreate returns the session for id, or a new one when id is unknown
// or expired. created reports which.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess, false
		}
	}
	return s.Create(), true
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}

// Sweep evicts expired sessions and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	if removed > 0 {
		s.logger.Info("sessions evicted", map[string]interface{}{"removed": removed, "active": n})
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
