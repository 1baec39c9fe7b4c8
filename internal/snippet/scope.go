package snippet

// Scope is the execution context a snippet's code runs in.
type Scope int

const (
	// ScopeGlobal runs everywhere.
	ScopeGlobal Scope = iota
	// ScopeAdmin runs only in the admin area.
	ScopeAdmin
	// ScopeFrontEnd runs only on the public site.
	ScopeFrontEnd
)

// Valid reports whether s is one of the defined scopes.
func (s Scope) Valid() bool {
	return s >= ScopeGlobal && s <= ScopeFrontEnd
}

// Name returns the display name of the scope. The global scope has no
// fixed name; callers supply their own default (typically "global").
func (s Scope) Name(def string) string {
	switch s {
	case ScopeAdmin:
		return "admin"
	case ScopeFrontEnd:
		return "front-end"
	default:
		return def
	}
}
