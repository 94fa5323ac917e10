// Package kb holds the client-side state of knowledge base listings:
// a scope-bound store refreshed from the backend, the search filter, and
// the role-to-capability mapping.
package kb

import "github.com/wrenlabs/knowhub/internal/api"

// Store keeps the in-memory knowledge base sequence for one scope.
// The backend is the source of truth: every mutation is followed by a full
// refresh, and the sequence is replaced atomically, never merged.
//
// Refreshes are tagged with a token so that a response arriving after the
// scope changed (or after a newer refresh started) is discarded instead of
// clobbering current state.
type Store struct {
	scope   Scope
	items   []api.KnowledgeBase
	loading bool
	token   int
}

// NewStore creates an empty store for the given scope.
func NewStore(scope Scope) *Store {
	return &Store{scope: scope}
}

// Scope returns the scope the store is bound to.
func (s *Store) Scope() Scope {
	return s.scope
}

// Items returns the current sequence in backend order.
func (s *Store) Items() []api.KnowledgeBase {
	return s.items
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// Begin marks a refresh as in flight and returns its token. A later Begin
// supersedes any earlier one still outstanding.
func (s *Store) Begin() int {
	s.token++
	s.loading = true
	return s.token
}

// Complete installs a refresh result. Stale tokens are discarded and the
// current state is left untouched.
func (s *Store) Complete(token int, items []api.KnowledgeBase) bool {
	if token != s.token {
		return false
	}
	s.items = items
	s.loading = false
	return true
}

// Fail clears the loading flag for the given refresh. Stale tokens are
// ignored so an old failure cannot mask a newer in-flight refresh.
func (s *Store) Fail(token int) bool {
	if token != s.token {
		return false
	}
	s.loading = false
	return true
}

// Reset rebinds the store to a new scope, dropping items and invalidating
// any outstanding refresh.
func (s *Store) Reset(scope Scope) {
	s.scope = scope
	s.items = nil
	s.loading = false
	s.token++
}
