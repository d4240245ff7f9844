package cfgval

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Kind identifies a config value's storage kind and mutability policy.
// The mutability is a property of the kind, not a separate flag.
type Kind uint8

const (
	// KindInt is a read-only integer value.
	KindInt Kind = iota
	// KindBool is a read-only boolean value.
	KindBool
	// KindString is a read-only string value.
	KindString
	// KindUpdatableInt is an integer value that can be replaced at runtime.
	KindUpdatableInt
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindUpdatableInt:
		return "updatable integer"
	default:
		return "unknown"
	}
}

// Updatable reports whether values of this kind accept Set.
func (k Kind) Updatable() bool {
	return k == KindUpdatableInt
}

// Value is a single typed configuration value. Each variant commits to one
// canonical representation (string, boolean, or 64-bit signed integer) at
// construction and never changes it afterwards.
type Value interface {
	// Key returns the declared parameter name.
	Key() string

	// Help returns the declared description.
	Help() string

	// Kind returns the storage kind.
	Kind() Kind

	// String returns the canonical string projection of the current value.
	String() string

	// Int64 returns the canonical integer projection. Boolean variants
	// project to 0/1; string variants fail with *ParseError when the stored
	// text is not a valid integer literal.
	Int64() (int64, error)

	// Bool returns the canonical boolean projection. Integer variants
	// project nonzero to true; string variants use the case-insensitive
	// rule of strToBool.
	Bool() bool

	// Set replaces the stored value after parsing text into the canonical
	// representation. Read-only variants fail with *ReadOnlyError and never
	// mutate; the updatable integer variant replaces its value atomically.
	Set(text string) error
}

// strToBool converts text to a boolean using the config value rule:
// "0", "FALSE" and "OFF" (case-insensitive) are false, every other string
// including the empty string is true.
func strToBool(s string) bool {
	switch strings.ToUpper(s) {
	case "0", "FALSE", "OFF":
		return false
	default:
		return true
	}
}

// parmInfo carries the identity shared by all value variants.
type parmInfo struct {
	key  string
	help string
}

func (p parmInfo) Key() string  { return p.key }
func (p parmInfo) Help() string { return p.help }

// intValue is a read-only integer config value. The declared bit width is
// informational; the canonical storage is always a 64-bit signed integer.
type intValue struct {
	parmInfo
	bits int
	val  int64
}

func (v *intValue) Kind() Kind            { return KindInt }
func (v *intValue) String() string        { return strconv.FormatInt(v.val, 10) }
func (v *intValue) Int64() (int64, error) { return v.val, nil }
func (v *intValue) Bool() bool            { return v.val != 0 }

func (v *intValue) Set(string) error {
	return &ReadOnlyError{Key: v.key}
}

// boolValue is a read-only boolean config value.
type boolValue struct {
	parmInfo
	val bool
}

func (v *boolValue) Kind() Kind     { return KindBool }
func (v *boolValue) String() string { return strconv.FormatBool(v.val) }
func (v *boolValue) Bool() bool     { return v.val }

func (v *boolValue) Int64() (int64, error) {
	if v.val {
		return 1, nil
	}
	return 0, nil
}

func (v *boolValue) Set(string) error {
	return &ReadOnlyError{Key: v.key}
}

// stringValue is a read-only string config value.
type stringValue struct {
	parmInfo
	val string
}

func (v *stringValue) Kind() Kind     { return KindString }
func (v *stringValue) String() string { return v.val }
func (v *stringValue) Bool() bool     { return strToBool(v.val) }

func (v *stringValue) Int64() (int64, error) {
	n, err := strconv.ParseInt(v.val, 10, 64)
	if err != nil {
		return 0, &ParseError{Key: v.key, Input: v.val, Kind: KindInt, Err: err}
	}
	return n, nil
}

func (v *stringValue) Set(string) error {
	return &ReadOnlyError{Key: v.key}
}

// updatableIntValue is an integer config value that can be replaced at
// runtime. The value lives in an atomic cell so concurrent Set and read
// calls never block and never observe a torn value.
type updatableIntValue struct {
	parmInfo
	bits int
	val  atomic.Int64
}

func (v *updatableIntValue) Kind() Kind            { return KindUpdatableInt }
func (v *updatableIntValue) String() string        { return strconv.FormatInt(v.val.Load(), 10) }
func (v *updatableIntValue) Int64() (int64, error) { return v.val.Load(), nil }
func (v *updatableIntValue) Bool() bool            { return v.val.Load() != 0 }

func (v *updatableIntValue) Set(text string) error {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return &ParseError{Key: v.key, Input: text, Kind: KindUpdatableInt, Err: err}
	}
	v.val.Store(n)
	return nil
}
