package cfgval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testParm enumerates the parameters used throughout the registry tests.
type testParm uint8

const (
	parmMaxRows testParm = iota
	parmStride
	parmSharedFS
	parmCacheSize
	parmInsertFlush
	parmQuorum
	parmUndeclared // Never part of a template
)

func testTemplate() []Decl[testParm] {
	return []Decl[testParm]{
		{Parm: parmMaxRows, Key: "MAX_ROWS_PER_ROWGROUP", Kind: KindInt, Default: 10000, Bits: 32,
			Help: "Maximum number of rows per row group."},
		{Parm: parmStride, Key: "STRIDE_SIZE", Kind: KindInt, Default: int16(512), Bits: 16,
			Help: "Maximum stride size of a table"},
		{Parm: parmSharedFS, Key: "SHARED_FS", Kind: KindString, Default: "alluxio",
			Help: "The file system type"},
		{Parm: parmCacheSize, Key: "CACHE_MEM_SZ", Kind: KindUpdatableInt, Default: int64(0), Bits: 64,
			Help: "Memory size of cache"},
		{Parm: parmInsertFlush, Key: "INSERT_FLUSH", Kind: KindBool, Default: true,
			Help: "Does each insert flush?"},
		{Parm: parmQuorum, Key: "QUORUM_WRITE", Kind: KindString, Default: "true",
			Help: "Is quorum write set"},
	}
}

// TestRegistryDefaults verifies that an empty override map yields the
// declared defaults for every parameter.
func TestRegistryDefaults(t *testing.T) {
	r, err := New(testTemplate(), nil)
	require.NoError(t, err)
	require.Equal(t, 6, r.Len())

	assert.Equal(t, int64(10000), MustGet[int64](r, parmMaxRows))
	assert.Equal(t, int16(512), MustGet[int16](r, parmStride))
	assert.Equal(t, "alluxio", MustGet[string](r, parmSharedFS))
	assert.Equal(t, int64(0), MustGet[int64](r, parmCacheSize))
	assert.True(t, MustGet[bool](r, parmInsertFlush))
	assert.Equal(t, "true", MustGet[string](r, parmQuorum))
}

// TestRegistryOverrides verifies that overridden parameters start from the
// parsed override, not the default.
func TestRegistryOverrides(t *testing.T) {
	overrides := map[string]string{
		"MAX_ROWS_PER_ROWGROUP": "512",
		"SHARED_FS":             "hdfs",
		"INSERT_FLUSH":          "false",
		"CACHE_MEM_SZ":          "65536",
	}

	r, err := New(testTemplate(), overrides)
	require.NoError(t, err)

	assert.Equal(t, "512", MustGet[string](r, parmMaxRows))
	assert.Equal(t, "hdfs", MustGet[string](r, parmSharedFS))
	assert.False(t, MustGet[bool](r, parmInsertFlush))
	assert.Equal(t, int64(65536), MustGet[int64](r, parmCacheSize))

	// Parameters without an override keep their defaults.
	assert.Equal(t, int16(512), MustGet[int16](r, parmStride))
}

// TestRegistryConstructionFailures tests template and override mistakes
// that must fail construction outright.
func TestRegistryConstructionFailures(t *testing.T) {
	t.Run("MalformedIntOverride", func(t *testing.T) {
		_, err := New(testTemplate(), map[string]string{"STRIDE_SIZE": "wide"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := New([]Decl[testParm]{{Parm: parmMaxRows, Kind: KindInt, Default: 1}}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty key")
	})

	t.Run("DuplicateParm", func(t *testing.T) {
		_, err := New([]Decl[testParm]{
			{Parm: parmMaxRows, Key: "A", Kind: KindInt, Default: 1},
			{Parm: parmMaxRows, Key: "B", Kind: KindInt, Default: 2},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declared more than once")
	})

	t.Run("WrongDefaultType", func(t *testing.T) {
		_, err := New([]Decl[testParm]{
			{Parm: parmMaxRows, Key: "A", Kind: KindInt, Default: "ten"},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "integer default required")

		_, err = New([]Decl[testParm]{
			{Parm: parmMaxRows, Key: "A", Kind: KindBool, Default: 1},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boolean default required")

		_, err = New([]Decl[testParm]{
			{Parm: parmMaxRows, Key: "A", Kind: KindString, Default: 3.14},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "string default required")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := New([]Decl[testParm]{
			{Parm: parmMaxRows, Key: "A", Kind: Kind(42), Default: 1},
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
	})

	t.Run("MustNewPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(testTemplate(), map[string]string{"STRIDE_SIZE": "wide"})
		})
	})
}

// TestRegistrySet tests the runtime mutation path through the registry.
func TestRegistrySet(t *testing.T) {
	r := MustNew(testTemplate(), nil)

	t.Run("UpdatableParameter", func(t *testing.T) {
		require.NoError(t, r.Set(parmCacheSize, "4096000"))
		assert.Equal(t, uint64(4096000), MustGet[uint64](r, parmCacheSize))

		// The new value is immediately and exclusively visible.
		assert.Equal(t, "4096000", MustGet[string](r, parmCacheSize))
	})

	t.Run("ReadOnlyParameter", func(t *testing.T) {
		before := MustGet[int64](r, parmMaxRows)

		err := r.Set(parmMaxRows, "99")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadOnly)

		var roErr *ReadOnlyError
		require.ErrorAs(t, err, &roErr)
		assert.Equal(t, "MAX_ROWS_PER_ROWGROUP", roErr.Key)

		assert.Equal(t, before, MustGet[int64](r, parmMaxRows), "value unchanged after failed set")
	})

	t.Run("MalformedText", func(t *testing.T) {
		require.NoError(t, r.Set(parmCacheSize, "123"))

		err := r.Set(parmCacheSize, "big")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)

		assert.Equal(t, int64(123), MustGet[int64](r, parmCacheSize), "value unchanged after failed parse")
	})
}

// TestRegistryUndeclaredParm verifies that looking up a parameter outside
// the declared enumeration is treated as a programming error.
func TestRegistryUndeclaredParm(t *testing.T) {
	r := MustNew(testTemplate(), nil)

	assert.Panics(t, func() { _, _ = Get[int64](r, parmUndeclared) })
	assert.Panics(t, func() { _ = r.Set(parmUndeclared, "1") })
	assert.Panics(t, func() { _ = r.Help(parmUndeclared) })
}

// TestRegistryIntrospection tests Keys, KeyOf, Help, and Describe.
func TestRegistryIntrospection(t *testing.T) {
	r := MustNew(testTemplate(), nil)

	assert.Equal(t, []string{
		"CACHE_MEM_SZ",
		"INSERT_FLUSH",
		"MAX_ROWS_PER_ROWGROUP",
		"QUORUM_WRITE",
		"SHARED_FS",
		"STRIDE_SIZE",
	}, r.Keys())

	assert.Equal(t, "CACHE_MEM_SZ", r.KeyOf(parmCacheSize))
	assert.Equal(t, "Memory size of cache", r.Help(parmCacheSize))

	desc := r.Describe()
	assert.Contains(t, desc, "MAX_ROWS_PER_ROWGROUP")
	assert.Contains(t, desc, "updatable integer")
	assert.Contains(t, desc, "Maximum number of rows per row group.")
}

// TestRegistryEndToEnd covers the documented end-to-end scenarios.
func TestRegistryEndToEnd(t *testing.T) {
	t.Run("OverrideReadAsText", func(t *testing.T) {
		r := MustNew(testTemplate(), map[string]string{"MAX_ROWS_PER_ROWGROUP": "512"})
		assert.Equal(t, "512", MustGet[string](r, parmMaxRows))
	})

	t.Run("UpdatableSetThenReadUint64", func(t *testing.T) {
		r := MustNew(testTemplate(), nil)
		assert.Equal(t, int64(0), MustGet[int64](r, parmCacheSize))

		require.NoError(t, r.Set(parmCacheSize, "4096000"))
		assert.Equal(t, uint64(4096000), MustGet[uint64](r, parmCacheSize))
	})

	t.Run("BoolOverrideAndReadOnlySet", func(t *testing.T) {
		r := MustNew(testTemplate(), map[string]string{"INSERT_FLUSH": "false"})
		assert.False(t, MustGet[bool](r, parmInsertFlush))

		err := r.Set(parmInsertFlush, "true")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadOnly)
		assert.False(t, MustGet[bool](r, parmInsertFlush))
	})
}
