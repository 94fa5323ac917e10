// Package codewiki holds the client-side state of the code wiki project
// listing: the incremental page loader, the visibility filter, and the
// two-phase generation cancel flow.
package codewiki

import "github.com/wrenlabs/knowhub/internal/api"

// DefaultPageSize matches the backend's wiki project page size.
const DefaultPageSize = 25

// Loader accumulates project pages. Pages are append-only: loading more
// never replaces what is already shown. Whether more pages exist is derived
// from the last page being full-sized, so a short page ends the sequence.
//
// Page fetches carry a token so a response that arrives after a Reset (or
// after a newer fetch started) is discarded.
type Loader struct {
	PageSize int

	projects []api.Project
	nextPage int
	hasMore  bool
	loading  bool
	token    int
}

// NewLoader creates a loader with the default page size.
func NewLoader() *Loader {
	return &Loader{PageSize: DefaultPageSize, nextPage: 1, hasMore: true}
}

// Projects returns all loaded projects in page order.
func (l *Loader) Projects() []api.Project {
	return l.projects
}

// HasMore reports whether another page may exist.
func (l *Loader) HasMore() bool {
	return l.hasMore
}

// Loading reports whether a page fetch is in flight.
func (l *Loader) Loading() bool {
	return l.loading
}

// StartPage begins the next page fetch and returns the 1-based page number
// to request along with the fetch token.
func (l *Loader) StartPage() (page, token int) {
	l.token++
	l.loading = true
	return l.nextPage, l.token
}

// ApplyPage appends a fetched page. A page shorter than PageSize means the
// backend is out of projects. Stale tokens are discarded.
func (l *Loader) ApplyPage(token int, items []api.Project) bool {
	if token != l.token {
		return false
	}
	l.projects = append(l.projects, items...)
	l.hasMore = len(items) == l.PageSize
	l.nextPage++
	l.loading = false
	return true
}

// FailPage clears the loading flag for the given fetch without advancing
// the page cursor, so the same page can be retried.
func (l *Loader) FailPage(token int) bool {
	if token != l.token {
		return false
	}
	l.loading = false
	return true
}

// Reset drops all loaded pages and invalidates any outstanding fetch.
func (l *Loader) Reset() {
	l.projects = nil
	l.nextPage = 1
	l.hasMore = true
	l.loading = false
	l.token++
}
