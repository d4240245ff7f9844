package cfgval

import "fmt"

// Coercible enumerates the destination types supported by Get: text,
// boolean, and all sized integer types. Requesting any other type is a
// compile-time error.
type Coercible interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// Get returns the value of parm coerced to the requested type T.
//
// String destinations receive the canonical string projection and boolean
// destinations the canonical boolean projection. Integer destinations
// receive the canonical 64-bit integer narrowed to T's width by
// two's-complement truncation: only the low bits are kept, with no range
// check and no overflow error. Projecting 131072 into a uint8 therefore
// yields 0.
//
// The only error condition is a *ParseError from projecting a string value
// to an integer destination. Get panics if parm is not declared in the
// registry; the declarative template guarantees every enumerated parameter
// a value, so a miss is a programming error.
func Get[T Coercible, P comparable](r *Registry[P], parm P) (T, error) {
	return coerce[T](r.value(parm))
}

// MustGet is like Get but panics on error. Convenient for parameters whose
// canonical representation is known to project cleanly to T.
func MustGet[T Coercible, P comparable](r *Registry[P], parm P) T {
	out, err := Get[T](r, parm)
	if err != nil {
		panic(fmt.Sprintf("cfgval: %v", err))
	}
	return out
}

// coerce projects a value's canonical representation into T. Dispatch is on
// the destination type; each integer arm converts from int64 with Go's
// wrapping conversion, which keeps the low bits of the two's-complement
// representation.
func coerce[T Coercible](v Value) (T, error) {
	var out T

	switch p := any(&out).(type) {
	case *string:
		*p = v.String()

	case *bool:
		*p = v.Bool()

	case *int:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = int(n)

	case *int8:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = int8(n)

	case *int16:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = int16(n)

	case *int32:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = int32(n)

	case *int64:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = n

	case *uint:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = uint(n)

	case *uint8:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = uint8(n)

	case *uint16:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = uint16(n)

	case *uint32:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = uint32(n)

	case *uint64:
		n, err := v.Int64()
		if err != nil {
			return out, err
		}
		*p = uint64(n)
	}

	return out, nil
}
