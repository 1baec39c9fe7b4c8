package snippet

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Field names a snippet field. The set is fixed: the constants below are
// the only names the generic operations accept.
type Field string

// Stored fields.
const (
	FieldID      Field = "id"
	FieldName    Field = "name"
	FieldDesc    Field = "desc"
	FieldCode    Field = "code"
	FieldTags    Field = "tags"
	FieldScope   Field = "scope"
	FieldActive  Field = "active"
	FieldNetwork Field = "network"
)

// FieldDescription is an alias for FieldDesc; it resolves to the canonical
// name before any read or write.
const FieldDescription Field = "description"

// Derived read-only views.
const (
	FieldTagsList      Field = "tags_list"
	FieldScopeName     Field = "scope_name"
	FieldSharedNetwork Field = "shared_network"
)

var aliases = map[Field]Field{
	FieldDescription: FieldDesc,
}

// canonical rewrites an alias to its stored field name.
func canonical(field Field) Field {
	if target, ok := aliases[field]; ok {
		return target
	}
	return field
}

// setters maps each writable field to its normalizer. The normalizer's
// result is what gets stored, never the raw input.
var setters = map[Field]func(*Record, any){
	FieldID:      (*Record).setID,
	FieldName:    func(r *Record, v any) { r.name = toString(v) },
	FieldDesc:    func(r *Record, v any) { r.desc = toString(v) },
	FieldCode:    (*Record).setCode,
	FieldTags:    func(r *Record, v any) { r.tags = BuildTags(v) },
	FieldScope:   (*Record).setScope,
	FieldActive:  func(r *Record, v any) { r.active = truthy(v) },
	FieldNetwork: (*Record).setNetwork,
}

var getters = map[Field]func(*Record) any{
	FieldID:      func(r *Record) any { return r.id },
	FieldName:    func(r *Record) any { return r.name },
	FieldDesc:    func(r *Record) any { return r.desc },
	FieldCode:    func(r *Record) any { return r.code },
	FieldTags:    func(r *Record) any { return r.Tags() },
	FieldScope:   func(r *Record) any { return r.scope },
	FieldActive:  func(r *Record) any { return r.active },
	FieldNetwork: func(r *Record) any { return r.network },
}

var computed = map[Field]func(*Record) any{
	FieldTagsList:      func(r *Record) any { return r.TagsList() },
	FieldScopeName:     func(r *Record) any { return r.ScopeName("global") },
	FieldSharedNetwork: func(r *Record) any { return r.SharedNetwork() },
}

func allowedFields() []Field {
	fields := make([]Field, 0, len(setters)+len(aliases))
	for f := range setters {
		fields = append(fields, f)
	}
	for f := range aliases {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// setID stores the absolute integer value of the input, truncated toward
// zero: -5 → 5, 3.9 → 3, -3.9 → 3. Non-numeric input stores 0.
func (r *Record) setID(value any) {
	n, ok := toInt64(value)
	if !ok {
		r.id = 0
		return
	}
	if n < 0 {
		n = -n
	}
	r.id = uint(n)
}

// Leading open-code marker ("<?php" or a bare "<?") with any whitespace
// before it, and trailing close-code marker with any whitespace after it.
var (
	openMarker  = regexp.MustCompile(`^\s*<\?(php)?`)
	closeMarker = regexp.MustCompile(`\?>\s*$`)
)

// setCode strips the code markers but leaves the body otherwise untouched,
// inner whitespace included.
func (r *Record) setCode(value any) {
	code := toString(value)
	code = openMarker.ReplaceAllString(code, "")
	code = closeMarker.ReplaceAllString(code, "")
	r.code = code
}

// setScope keeps the value only when it casts to a valid scope. An
// out-of-range or non-numeric write silently retains the prior scope —
// bad input here is rejected, not an error.
func (r *Record) setScope(value any) {
	n, ok := toInt64(value)
	if !ok {
		return
	}
	if s := Scope(n); s.Valid() {
		r.scope = s
	}
}

// setNetwork is strict: the field becomes true only for the boolean true.
// A nil write means "unset" and adopts the network-admin context signal,
// which is how records constructed on the network admin screen default to
// network-wide.
func (r *Record) setNetwork(value any) {
	if value == nil {
		r.network = r.env != nil && r.env.IsNetworkAdmin()
		return
	}
	b, ok := value.(bool)
	r.network = ok && b
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// toInt64 coerces the numeric kinds a source mapping can carry — native
// integers, JSON's float64, numeric strings — truncating floats toward
// zero.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case Scope:
		return int64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// truthy coerces a loose value to a boolean. Booleans pass through;
// numbers are true when non-zero, strings when non-empty and not "0",
// nil is false. Anything else (a populated slice, a struct) counts as true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case float32:
		return v != 0
	case float64:
		return v != 0
	}
	if n, ok := toInt64(value); ok {
		return n != 0
	}
	return true
}
