package kb

// Scope identifies whose knowledge bases a listing shows: the current
// user's personal namespace, or a named group.
type Scope struct {
	group string
}

// Personal returns the personal scope.
func Personal() Scope {
	return Scope{}
}

// ForGroup returns the scope for a named group.
func ForGroup(name string) Scope {
	return Scope{group: name}
}

// IsPersonal reports whether the scope is the personal namespace.
func (s Scope) IsPersonal() bool {
	return s.group == ""
}

// Group returns the group name, empty for the personal scope.
func (s Scope) Group() string {
	return s.group
}

// Namespace resolves the request namespace for the scope.
func (s Scope) Namespace(username string) string {
	if s.group != "" {
		return s.group
	}
	return username
}
