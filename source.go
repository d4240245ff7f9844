package cfgval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Override sources. The registry itself only ever sees a finished
// map[string]string; these helpers are the collaborators that build it from
// files, the environment, and command-line arguments.

// LoadOverridesFile reads an override map from a TOML, JSON, or YAML file.
// The format is detected from the file extension first, then from content.
// Nested tables are flattened to dot-notation keys; scalar values are
// stringified so the factory can reparse them per destination kind.
//
// A missing file returns ErrOverridesNotFound so callers can decide whether
// the overrides file is optional.
func LoadOverridesFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrOverridesNotFound
		}
		return nil, fmt.Errorf("failed to read overrides file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine overrides format for file '%s'", path)
		}
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML overrides file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON overrides file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML overrides file '%s': %w", path, err)
		}
	}

	return flattenToStrings(raw, ""), nil
}

// OverridesFromEnv collects overrides from environment variables for the
// given declared keys. Each key is transformed with the default transform
// (dots to underscores, uppercase, prefix) and looked up; values are taken
// verbatim as override text.
func OverridesFromEnv(prefix string, keys []string) map[string]string {
	overrides := make(map[string]string)
	for _, key := range keys {
		if value, exists := os.LookupEnv(defaultEnvTransform(prefix, key)); exists {
			overrides[key] = value
		}
	}
	return overrides
}

// ParseOverrideArgs processes command-line arguments into an override map.
// Accepted forms: "--KEY=value", "--KEY value", and bare "--KEY" which is
// treated as the boolean text "true". Non-flag arguments are skipped.
func ParseOverrideArgs(args []string) (map[string]string, error) {
	overrides := make(map[string]string)

	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// "--" used as a separator
			i++
			continue
		}

		var key, value string
		if strings.Contains(argContent, "=") {
			parts := strings.SplitN(argContent, "=", 2)
			key = parts[0]
			value = parts[1]
			i++
		} else {
			key = argContent
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				value = "true"
				i++
			} else {
				value = args[i+1]
				i += 2
			}
		}

		if key == "" {
			return nil, fmt.Errorf("invalid override flag %q", arg)
		}
		overrides[key] = value
	}

	return overrides, nil
}

// MergeOverrides combines override layers into one map. Later layers take
// precedence over earlier ones; nil layers are skipped.
func MergeOverrides(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect the format by parsing.
// JSON is tried first as the strictest format, YAML last because it accepts
// almost anything.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
