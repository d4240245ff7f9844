package cfgval

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for assembling an override map from
// multiple sources and constructing a registry from it.
//
// Source precedence, highest first: command-line arguments, environment
// variables, overrides file, explicit override map, declared defaults.
type Builder[P comparable] struct {
	template  []Decl[P]
	overrides map[string]string
	file      string
	envPrefix string
	useEnv    bool
	args      []string
	err       error
}

// NewBuilder creates a new registry builder.
func NewBuilder[P comparable]() *Builder[P] {
	return &Builder[P]{}
}

// WithTemplate sets the declarative parameter template.
func (b *Builder[P]) WithTemplate(template ...Decl[P]) *Builder[P] {
	b.template = append(b.template, template...)
	return b
}

// WithOverrides sets an explicit override map, layered below all other
// sources.
func (b *Builder[P]) WithOverrides(overrides map[string]string) *Builder[P] {
	b.overrides = overrides
	return b
}

// WithFile sets the overrides file path. A missing file is not an error;
// the remaining sources still apply.
func (b *Builder[P]) WithFile(path string) *Builder[P] {
	b.file = path
	return b
}

// WithEnvPrefix enables environment variable lookup for every declared key,
// using prefix + the uppercased key.
func (b *Builder[P]) WithEnvPrefix(prefix string) *Builder[P] {
	b.envPrefix = prefix
	b.useEnv = true
	return b
}

// WithArgs sets the command-line arguments to scan for "--KEY=value" style
// overrides (typically os.Args[1:]).
func (b *Builder[P]) WithArgs(args []string) *Builder[P] {
	b.args = args
	return b
}

// Build assembles the override map from all configured sources and
// constructs the registry. Construction fails on a malformed source or a
// malformed integer override, per the registry's construction contract.
func (b *Builder[P]) Build() (*Registry[P], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.template) == 0 {
		return nil, errors.New("builder requires a parameter template")
	}

	layers := []map[string]string{b.overrides}

	if b.file != "" {
		fileOverrides, err := LoadOverridesFile(b.file)
		if err != nil && !errors.Is(err, ErrOverridesNotFound) {
			return nil, err
		}
		layers = append(layers, fileOverrides)
	}

	if b.useEnv {
		keys := make([]string, 0, len(b.template))
		for _, d := range b.template {
			keys = append(keys, d.Key)
		}
		layers = append(layers, OverridesFromEnv(b.envPrefix, keys))
	}

	if len(b.args) > 0 {
		cliOverrides, err := ParseOverrideArgs(b.args)
		if err != nil {
			return nil, err
		}
		layers = append(layers, cliOverrides)
	}

	return New(b.template, MergeOverrides(layers...))
}

// MustBuild is like Build but panics on error.
func (b *Builder[P]) MustBuild() *Registry[P] {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("cfgval: registry build failed: %v", err))
	}
	return r
}
