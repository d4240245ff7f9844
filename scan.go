package cfgval

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the registry's current values into the target struct or map.
// The target must be a non-nil pointer. Fields are matched against declared
// keys via the "cfg" struct tag (or the field name), with weakly typed
// conversion so integer values can populate any numeric field.
//
// The snapshot is taken value by value; updatable parameters contribute
// their value at the moment of the read.
func (r *Registry[P]) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	snapshot := make(map[string]any, len(r.parms))
	for _, v := range r.parms {
		snapshot[v.Key()] = canonical(v)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "cfg",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(snapshot); err != nil {
		return fmt.Errorf("failed to scan config values into %T: %w", target, err)
	}

	return nil
}

// canonical returns a value's current canonical representation as the
// matching Go type.
func canonical(v Value) any {
	switch v.Kind() {
	case KindBool:
		return v.Bool()
	case KindString:
		return v.String()
	default:
		// Integer kinds never fail the integer projection.
		n, _ := v.Int64()
		return n
	}
}
