// Package nav owns the navigation state of the knowledge page and its
// mirror in a canonical query-string route. Every transition goes through
// a normalize step so that impossible combinations (a selected group while
// the group tab is not active, a document sub-tab while the code section is
// shown) cannot be represented.
package nav

import (
	"net/url"
	"strings"
)

// BasePath is the route prefix for the knowledge page.
const BasePath = "/knowledge"

const (
	paramSection = "type"
	paramTab     = "tab"
	paramGroup   = "group"
)

// Section is the top-level knowledge tab.
type Section string

const (
	SectionDocument Section = "document"
	SectionCode     Section = "code"
)

// DocTab is the document sub-tab.
type DocTab string

const (
	DocTabPersonal DocTab = "personal"
	DocTabGroup    DocTab = "group"
	DocTabExternal DocTab = "external"
)

// State is the navigation tuple for the knowledge page. Zero value is not
// canonical; use Default or Parse.
type State struct {
	Section Section
	DocTab  DocTab
	Group   string
}

// Default returns the state for a bare /knowledge visit.
func Default() State {
	return State{Section: SectionDocument, DocTab: DocTabPersonal}
}

// Parse builds a State from query parameters. Unknown or missing values
// fall back to defaults per axis, then dependent state is cleared.
func Parse(q url.Values) State {
	s := State{
		Section: parseSection(q.Get(paramSection)),
		DocTab:  parseDocTab(q.Get(paramTab)),
		Group:   strings.TrimSpace(q.Get(paramGroup)),
	}
	return s.normalize()
}

// ParseRoute parses a route like "/knowledge?type=document&tab=group&group=eng".
// A bare query string (with or without a leading "?") is also accepted.
func ParseRoute(route string) (State, error) {
	raw := strings.TrimSpace(route)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	} else if strings.HasPrefix(raw, "/") {
		raw = ""
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Default(), err
	}
	return Parse(q), nil
}

func parseSection(raw string) Section {
	if Section(raw) == SectionCode {
		return SectionCode
	}
	return SectionDocument
}

func parseDocTab(raw string) DocTab {
	switch DocTab(raw) {
	case DocTabGroup:
		return DocTabGroup
	case DocTabExternal:
		return DocTabExternal
	}
	return DocTabPersonal
}

// normalize clears dependent state so the tuple stays internally consistent.
func (s State) normalize() State {
	if s.Section != SectionDocument {
		s.DocTab = DocTabPersonal
		s.Group = ""
		return s
	}
	if s.DocTab != DocTabGroup {
		s.Group = ""
	}
	return s
}

// Values serializes the state, keeping only the keys that apply:
// tab is omitted outside the document section, group is omitted unless the
// group tab is active with a selection.
func (s State) Values() url.Values {
	s = s.normalize()
	q := url.Values{}
	q.Set(paramSection, string(s.Section))
	if s.Section == SectionDocument {
		q.Set(paramTab, string(s.DocTab))
		if s.DocTab == DocTabGroup && s.Group != "" {
			q.Set(paramGroup, s.Group)
		}
	}
	return q
}

// Route returns the canonical route string for the state.
func (s State) Route() string {
	return BasePath + "?" + s.Values().Encode()
}

// WithSection switches the top-level tab. Leaving the document section
// resets the sub-tab and drops any selected group.
func (s State) WithSection(sec Section) State {
	s.Section = parseSection(string(sec))
	return s.normalize()
}

// WithDocTab switches the document sub-tab and always drops the selected
// group; picking a group is a separate step via WithGroup.
func (s State) WithDocTab(t DocTab) State {
	s.Section = SectionDocument
	s.DocTab = parseDocTab(string(t))
	s.Group = ""
	return s.normalize()
}

// WithGroup selects a group, forcing the document section and group tab.
func (s State) WithGroup(name string) State {
	s.Section = SectionDocument
	s.DocTab = DocTabGroup
	s.Group = strings.TrimSpace(name)
	return s.normalize()
}

// GroupSelected reports whether a group is the active listing scope.
func (s State) GroupSelected() bool {
	return s.Section == SectionDocument && s.DocTab == DocTabGroup && s.Group != ""
}
