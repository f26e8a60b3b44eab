package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/navigator"
)

// sessionStore holds one Selection per client session.
// mu guards m and every Selection in it.
type sessionStore struct {
	mu sync.Mutex
	m  map[string]*navigator.Selection
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[string]*navigator.Selection)}
}

func (s *sessionStore) create(cat *campus.Catalog) (string, SessionResponse) {
	id := uuid.NewString()
	sel := navigator.NewSelection(cat)

	s.mu.Lock()
	s.m[id] = sel
	s.mu.Unlock()

	return id, sessionView(id, sel)
}

// with runs fn on the session's Selection under the store lock.
// It reports false when id is unknown.
func (s *sessionStore) with(id string, fn func(*navigator.Selection)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.m[id]
	if !ok {
		return false
	}
	fn(sel)
	return true
}

func (s *sessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return false
	}
	delete(s.m, id)
	return true
}

func sessionView(id string, sel *navigator.Selection) SessionResponse {
	return SessionResponse{ID: id, Start: sel.Start(), End: sel.End(), Ready: sel.Ready()}
}
