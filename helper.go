package cfgval

import (
	"encoding/json"
	"strconv"
	"strings"
)

// toInt64 converts any Go integer to the canonical int64 storage.
// Unsigned 64-bit defaults are reinterpreted bit-for-bit; the typed-access
// layer restores the unsigned view on the way out.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

// stringifyScalar renders a decoded file value as override text.
// Returns false for values with no text form (tables, arrays, nil).
func stringifyScalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	case int:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

// flattenToStrings converts a nested map to a flat override map with
// dot-notation keys and stringified scalar values. Non-scalar leaves are
// skipped.
func flattenToStrings(nested map[string]any, prefix string) map[string]string {
	flat := make(map[string]string)

	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenToStrings(nestedMap, path) {
				flat[subPath] = subValue
			}
			continue
		}

		if text, ok := stringifyScalar(value); ok {
			flat[path] = text
		}
	}

	return flat
}

// defaultEnvTransform maps a declared key to its environment variable name:
// dots become underscores, the result is uppercased, and the prefix is
// prepended.
func defaultEnvTransform(prefix, key string) string {
	env := strings.ReplaceAll(key, ".", "_")
	env = strings.ToUpper(env)
	return prefix + env
}
