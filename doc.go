// Package cfgval provides a typed configuration-value registry for Go
// applications: a fixed, enumerated set of named parameters, each with a
// hard-coded default, an optional startup override, and a declared
// mutability policy.
//
// Features:
//   - Closed set of value variants: read-only integer, read-only boolean,
//     read-only string, and runtime-updatable integer
//   - Override resolution applied once at construction (override text wins
//     over the hard-coded default)
//   - Generic typed access with documented two's-complement truncation for
//     narrow integer destinations
//   - Lock-free atomic reads and writes for the updatable integer variant
//   - Override maps built from TOML/JSON/YAML files, environment variables,
//     and command-line arguments with CLI > env > file precedence
//   - Struct export of current values via mapstructure
//
// Quick Start:
//
//	type Parm uint8
//
//	const (
//	    MaxRows Parm = iota
//	    CacheSize
//	)
//
//	reg, err := cfgval.New([]cfgval.Decl[Parm]{
//	    {Parm: MaxRows, Key: "MAX_ROWS", Kind: cfgval.KindInt, Default: 10000,
//	        Help: "Maximum number of rows per row group."},
//	    {Parm: CacheSize, Key: "CACHE_MEM_SZ", Kind: cfgval.KindUpdatableInt, Default: 0,
//	        Help: "Memory size of cache."},
//	}, map[string]string{"MAX_ROWS": "512"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, _ := cfgval.Get[int](reg, MaxRows) // 512, from the override
//	_ = reg.Set(CacheSize, "4096000")
//
// Thread Safety:
// Registry construction is single-threaded and must complete before the
// registry is shared. After that, all reads are safe for concurrent use.
// Set is only meaningful on updatable parameters, whose values live in
// atomic cells; concurrent Set and Get calls never observe a torn value.
package cfgval
