package cfgval

import "strconv"

// Factory constructs config values, resolving each initial value from an
// override map supplied by the caller. If a value's key is present in the
// map, the override text is parsed into the destination storage kind;
// otherwise the hard-coded default is used as-is, without reparsing.
//
// The factory holds the override map only for the duration of registry
// construction and keeps no other state.
type Factory struct {
	overrides map[string]string
}

// NewFactory creates a factory over the given override map. A nil map is
// treated as empty.
func NewFactory(overrides map[string]string) *Factory {
	return &Factory{overrides: overrides}
}

// IntValue creates a read-only integer config value. bits records the
// declared width for diagnostics; the canonical storage is always int64.
func (f *Factory) IntValue(key string, def int64, bits int, help string) (Value, error) {
	val, err := f.resolveInt(key, def)
	if err != nil {
		return nil, err
	}
	return &intValue{parmInfo: parmInfo{key: key, help: help}, bits: bits, val: val}, nil
}

// BoolValue creates a read-only boolean config value.
func (f *Factory) BoolValue(key string, def bool, help string) Value {
	return &boolValue{parmInfo: parmInfo{key: key, help: help}, val: f.resolveBool(key, def)}
}

// StringValue creates a read-only string config value.
func (f *Factory) StringValue(key, def, help string) Value {
	return &stringValue{parmInfo: parmInfo{key: key, help: help}, val: f.resolveString(key, def)}
}

// UpdatableIntValue creates an integer config value that accepts runtime Set.
func (f *Factory) UpdatableIntValue(key string, def int64, bits int, help string) (Value, error) {
	val, err := f.resolveInt(key, def)
	if err != nil {
		return nil, err
	}
	v := &updatableIntValue{parmInfo: parmInfo{key: key, help: help}, bits: bits}
	v.val.Store(val)
	return v, nil
}

// resolveInt picks the initial value for an integer config value.
// A malformed override is a construction-time failure.
func (f *Factory) resolveInt(key string, def int64) (int64, error) {
	text, ok := f.overrides[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ParseError{Key: key, Input: text, Kind: KindInt, Err: err}
	}
	return n, nil
}

// resolveBool picks the initial value for a boolean config value.
// Override text is interpreted with the strToBool rule and cannot fail.
func (f *Factory) resolveBool(key string, def bool) bool {
	text, ok := f.overrides[key]
	if !ok {
		return def
	}
	return strToBool(text)
}

// resolveString picks the initial value for a string config value.
// Override text is taken verbatim.
func (f *Factory) resolveString(key, def string) string {
	text, ok := f.overrides[key]
	if !ok {
		return def
	}
	return text
}
