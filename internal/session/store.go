// Package session holds the per-session editing state: one current resume
// record and one current analysis result. Nothing is persisted; a session
// lives in memory and disappears when it expires or the process exits.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTTL is how long an idle session survives before cleanup.
const DefaultTTL = 2 * time.Hour

// defaultCleanupInterval is how often expired sessions are collected.
const defaultCleanupInterval = 10 * time.Minute

// Session is the state holder for one editing session. The record and the
// analysis are replaced wholesale on every write; concurrent requests race
// and the last one to resolve wins, which is acceptable because results
// supersede rather than merge.
type Session struct {
	ID       string
	Resume   *types.ResumeRecord
	Analysis *types.AnalysisResult

	lastAccess time.Time
}

// Store manages sessions keyed by generated id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl         time.Duration
	cleanupStop chan struct{}
	stopOnce    sync.Once
}

// NewStore creates a session store and starts its cleanup loop.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Store{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		cleanupStop: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Create starts a new session with an empty resume record.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:         uuid.New().String(),
		Resume:     types.NewResumeRecord(),
		lastAccess: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id, or nil when it does not exist.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.lastAccess = time.Now()
	return sess
}

// SetResume replaces the session's current record. Returns false when the
// session does not exist.
func (s *Store) SetResume(id string, record *types.ResumeRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Resume = record
	sess.lastAccess = time.Now()
	return true
}

// SetAnalysis replaces the session's current analysis result.
func (s *Store) SetAnalysis(id string, result *types.AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Analysis = result
	sess.lastAccess = time.Now()
	return true
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop terminates the cleanup loop.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.cleanupStop)
	})
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.cleanupStop:
			return
		}
	}
}

func (s *Store) removeExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
