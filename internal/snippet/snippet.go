// Package snippet defines the snippet record: a fixed set of named fields
// with per-field normalization, a generic get/set surface for callers that
// work with field names (form builders, importers), and a few derived
// read-only views.
//
// The record holds one snippet in memory. It never touches storage — the
// surrounding system decides where records come from and where they go.
// Context that the record cannot know by itself (multi-site mode, the
// network admin screen, the shared-snippets option) is injected through the
// Environment interface at construction.
package snippet

import "github.com/kamilsulima/code-snippets/internal/apperror"

// Record is a single snippet. The zero value is not usable; construct
// records with New.
//
// Fields are stored in typed struct members and reached generically through
// static lookup tables (see fields.go), so an unknown field name is a
// lookup miss rather than a reflection failure.
type Record struct {
	env Environment

	id      uint
	name    string
	desc    string
	code    string
	tags    []string
	scope   Scope
	active  bool
	network bool

	// sharedNetwork caches the shared-network computation. Computed at
	// most once per record; later field writes do not invalidate it.
	sharedNetwork *bool
}

// New builds a record from source. Accepted sources are a map[string]any,
// a map[Field]any, or another *Record (its stored fields are copied).
// Anything else — nil, a string, a number — yields a record with defaults
// only. Unknown keys in a source map are dropped without error; every
// accepted value passes through its field's normalizer.
//
// env may be nil, in which case the record behaves as a single-site
// installation: not multisite, not a network admin, no shared ids.
func New(env Environment, source any) *Record {
	r := &Record{
		env:  env,
		tags: []string{},
	}
	// An unset network flag adopts the admin-context signal.
	r.setNetwork(nil)

	switch src := source.(type) {
	case map[string]any:
		for k, v := range src {
			r.TrySet(Field(k), v)
		}
	case map[Field]any:
		for k, v := range src {
			r.TrySet(k, v)
		}
	case *Record:
		if src != nil {
			r.id = src.id
			r.name = src.name
			r.desc = src.desc
			r.code = src.code
			r.tags = append([]string{}, src.tags...)
			r.scope = src.scope
			r.active = src.active
			r.network = src.network
		}
	}
	return r
}

// Get returns the value of a field. Derived views (tags_list, scope_name,
// shared_network) are computed on each call; stored fields return their
// current value. An unknown name returns nil.
func (r *Record) Get(field Field) any {
	field = canonical(field)
	if get, ok := computed[field]; ok {
		return get(r)
	}
	if get, ok := getters[field]; ok {
		return get(r)
	}
	return nil
}

// Has reports whether field names a stored field or a derived view.
func (r *Record) Has(field Field) bool {
	field = canonical(field)
	if _, ok := computed[field]; ok {
		return true
	}
	_, ok := getters[field]
	return ok
}

// Set writes a field through its normalizer. Writing a name outside the
// allowed set (stored fields plus aliases) returns apperror.ErrInvalidField;
// derived views are not settable.
func (r *Record) Set(field Field, value any) error {
	field = canonical(field)
	set, ok := setters[field]
	if !ok {
		return apperror.InvalidField(string(field))
	}
	set(r, value)
	return nil
}

// TrySet is Set for callers feeding untrusted key sets: it reports whether
// the field was accepted instead of returning an error, and never writes
// anything for an unknown name.
func (r *Record) TrySet(field Field, value any) bool {
	field = canonical(field)
	set, ok := setters[field]
	if !ok {
		return false
	}
	set(r, value)
	return true
}

// Fields returns the allowed writable field names — stored fields plus
// aliases — in sorted order. UI form builders use this to validate their
// field lists.
func (r *Record) Fields() []Field {
	return allowedFields()
}

// ID returns the snippet id. Zero means not yet assigned.
func (r *Record) ID() uint { return r.id }

// Name returns the snippet name.
func (r *Record) Name() string { return r.name }

// Desc returns the snippet description.
func (r *Record) Desc() string { return r.desc }

// Code returns the snippet code body, open/close markers stripped.
func (r *Record) Code() string { return r.code }

// Tags returns a copy of the tag list. The stored value is always a
// sequence, never a raw string.
func (r *Record) Tags() []string {
	return append([]string{}, r.tags...)
}

// Scope returns the execution scope.
func (r *Record) Scope() Scope { return r.scope }

// Active reports whether the snippet is switched on.
func (r *Record) Active() bool { return r.active }

// Network reports whether this is a network-wide snippet.
func (r *Record) Network() bool { return r.network }

// TagsList returns the tags joined into a single display string.
func (r *Record) TagsList() string {
	return JoinTags(r.tags)
}

// ScopeName returns the display name of the scope, using def for the
// global scope.
func (r *Record) ScopeName(def string) string {
	return r.scope.Name(def)
}

// SharedNetwork reports whether this snippet is a shared network snippet:
// a network snippet on a multisite installation whose id is registered in
// the shared-snippets option. The result is computed once and cached for
// the life of the record, so the shared-ids lookup runs at most one time.
func (r *Record) SharedNetwork() bool {
	if r.sharedNetwork != nil {
		return *r.sharedNetwork
	}
	shared := false
	if r.network && r.env != nil && r.env.IsMultisite() {
		for _, id := range r.env.SharedIDs(SharedNetworkOption) {
			if id == r.id {
				shared = true
				break
			}
		}
	}
	r.sharedNetwork = &shared
	return shared
}
