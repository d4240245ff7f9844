package cfgval

import (
	"fmt"
	"sort"
	"strings"
)

// Decl declares one config parameter for a registry template: its identity
// within the enumeration, declared key, storage kind, hard-coded default,
// and help text.
type Decl[P comparable] struct {
	// Parm is the parameter's identity within the enumeration P.
	Parm P

	// Key is the declared name, used for override lookup and diagnostics.
	Key string

	// Kind selects the storage kind and mutability policy.
	Kind Kind

	// Default is the hard-coded default value. Integer kinds accept any Go
	// integer type; KindBool requires a bool; KindString requires a string.
	Default any

	// Help describes the parameter.
	Help string

	// Bits optionally records the declared integer width for diagnostics.
	// Zero means the canonical 64 bits. Ignored for non-integer kinds.
	Bits int
}

// Registry holds exactly one config value per declared parameter of the
// enumeration type P. It is built once from a declarative template plus an
// override map and owns its values exclusively for its lifetime.
//
// Construction must fully complete before the registry is shared between
// goroutines. After that, reads are safe for concurrent use without
// internal synchronization; only updatable values accept Set.
type Registry[P comparable] struct {
	parms map[P]Value
}

// New builds a registry from the declarative template, resolving each
// parameter's initial value against the override map. The override map is
// consulted only during this call and is not retained.
//
// A malformed integer override fails construction with a *ParseError; the
// registry must then be treated as wholly unusable. Template mistakes
// (empty key, duplicate parameter, default of the wrong type) also fail
// construction.
func New[P comparable](template []Decl[P], overrides map[string]string) (*Registry[P], error) {
	factory := NewFactory(overrides)
	parms := make(map[P]Value, len(template))

	for _, d := range template {
		if d.Key == "" {
			return nil, fmt.Errorf("config declaration for parm %v has an empty key", d.Parm)
		}
		if _, exists := parms[d.Parm]; exists {
			return nil, fmt.Errorf("config parm %v declared more than once", d.Parm)
		}

		val, err := buildValue(factory, d)
		if err != nil {
			return nil, err
		}
		parms[d.Parm] = val
	}

	return &Registry[P]{parms: parms}, nil
}

// MustNew is like New but panics on error. Useful for templates known to be
// well-formed when the override map comes from a trusted source.
func MustNew[P comparable](template []Decl[P], overrides map[string]string) *Registry[P] {
	r, err := New(template, overrides)
	if err != nil {
		panic(fmt.Sprintf("cfgval: registry construction failed: %v", err))
	}
	return r
}

// buildValue dispatches a declaration to the factory operation for its kind.
func buildValue[P comparable](factory *Factory, d Decl[P]) (Value, error) {
	switch d.Kind {
	case KindInt:
		def, ok := toInt64(d.Default)
		if !ok {
			return nil, fmt.Errorf("config value %s: integer default required, got %T", d.Key, d.Default)
		}
		return factory.IntValue(d.Key, def, d.Bits, d.Help)

	case KindUpdatableInt:
		def, ok := toInt64(d.Default)
		if !ok {
			return nil, fmt.Errorf("config value %s: integer default required, got %T", d.Key, d.Default)
		}
		return factory.UpdatableIntValue(d.Key, def, d.Bits, d.Help)

	case KindBool:
		def, ok := d.Default.(bool)
		if !ok {
			return nil, fmt.Errorf("config value %s: boolean default required, got %T", d.Key, d.Default)
		}
		return factory.BoolValue(d.Key, def, d.Help), nil

	case KindString:
		def, ok := d.Default.(string)
		if !ok {
			return nil, fmt.Errorf("config value %s: string default required, got %T", d.Key, d.Default)
		}
		return factory.StringValue(d.Key, def, d.Help), nil

	default:
		return nil, fmt.Errorf("config value %s: unknown kind %d", d.Key, d.Kind)
	}
}

// value returns the config value for parm. Every parameter of the
// enumeration is guaranteed a value by construction, so a miss is a
// programming error, not a recoverable condition.
func (r *Registry[P]) value(parm P) Value {
	v, ok := r.parms[parm]
	if !ok {
		panic(fmt.Sprintf("cfgval: parameter %v is not declared in this registry", parm))
	}
	return v
}

// Set replaces the value of an updatable parameter, parsing text into its
// canonical representation. It propagates *ReadOnlyError for read-only
// parameters and *ParseError for malformed text, both unchanged.
// Set panics if parm is not declared in this registry.
func (r *Registry[P]) Set(parm P, text string) error {
	return r.value(parm).Set(text)
}

// Help returns the declared help text for parm.
func (r *Registry[P]) Help(parm P) string {
	return r.value(parm).Help()
}

// KeyOf returns the declared key for parm.
func (r *Registry[P]) KeyOf(parm P) string {
	return r.value(parm).Key()
}

// Len returns the number of declared parameters.
func (r *Registry[P]) Len() int {
	return len(r.parms)
}

// Keys returns all declared keys sorted lexically.
func (r *Registry[P]) Keys() []string {
	keys := make([]string, 0, len(r.parms))
	for _, v := range r.parms {
		keys = append(keys, v.Key())
	}
	sort.Strings(keys)
	return keys
}

// Describe returns a formatted listing of all parameters with their kind,
// current value, and help text, sorted by key. Intended for debug output.
func (r *Registry[P]) Describe() string {
	vals := make([]Value, 0, len(r.parms))
	for _, v := range r.parms {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool {
		return vals[i].Key() < vals[j].Key()
	})

	var b strings.Builder
	b.WriteString("Configuration values:\n")
	for _, v := range vals {
		b.WriteString(fmt.Sprintf("  %s:\n", v.Key()))
		b.WriteString(fmt.Sprintf("    Kind:    %s\n", v.Kind()))
		b.WriteString(fmt.Sprintf("    Current: %s\n", v.String()))
		if help := v.Help(); help != "" {
			b.WriteString(fmt.Sprintf("    Help:    %s\n", help))
		}
	}
	return b.String()
}
