package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/cfgval"
)

// DatabaseParm enumerates the database configuration parameters.
type DatabaseParm uint8

const (
	MaxRowsPerRowGroup DatabaseParm = iota
	StrideSize
	SharedFSType
	CacheMemSize
)

// ClusterParm enumerates the cluster configuration parameters.
type ClusterParm uint8

const (
	NumNodes ClusterParm = iota
	ZKTimeout
	QuorumWrite
	InsertFlush
)

// databaseTemplate declares every database parameter with its default,
// storage kind, and help text.
var databaseTemplate = []cfgval.Decl[DatabaseParm]{
	{Parm: MaxRowsPerRowGroup, Key: "MAX_ROWS_PER_ROWGROUP", Kind: cfgval.KindInt, Default: 10000, Bits: 32,
		Help: "Maximum number of rows per row group."},
	{Parm: StrideSize, Key: "STRIDE_SIZE", Kind: cfgval.KindInt, Default: int16(512), Bits: 16,
		Help: "Maximum stride size of a table"},
	{Parm: SharedFSType, Key: "SHARED_FS", Kind: cfgval.KindString, Default: "alluxio",
		Help: "The file system type"},
	{Parm: CacheMemSize, Key: "CACHE_MEM_SZ", Kind: cfgval.KindUpdatableInt, Default: int64(0), Bits: 64,
		Help: "Memory size of cache"},
}

// clusterTemplate declares every cluster parameter.
var clusterTemplate = []cfgval.Decl[ClusterParm]{
	{Parm: NumNodes, Key: "NUM_NODES", Kind: cfgval.KindInt, Default: int8(3), Bits: 8,
		Help: "Number of nodes in the cluster."},
	{Parm: ZKTimeout, Key: "ZK_TIMEOUT", Kind: cfgval.KindInt, Default: int64(10000), Bits: 64,
		Help: "Zookeeper timeout in milliseconds"},
	{Parm: QuorumWrite, Key: "QUORUM_WRITE", Kind: cfgval.KindString, Default: "true",
		Help: "Is quorum write set"},
	{Parm: InsertFlush, Key: "INSERT_FLUSH", Kind: cfgval.KindBool, Default: true,
		Help: "Does each insert flush?"},
}

func main() {
	dbOverrides := map[string]string{"MAX_ROWS_PER_ROWGROUP": "512"}
	dbcfg, err := cfgval.New(databaseTemplate, dbOverrides)
	if err != nil {
		log.Fatalf("database config: %v", err)
	}

	fmt.Printf("Max Rows Per Row Group = %s\n", cfgval.MustGet[string](dbcfg, MaxRowsPerRowGroup))
	fmt.Printf("Stridesize = %s\n", cfgval.MustGet[string](dbcfg, StrideSize))

	clusterOverrides := map[string]string{"INSERT_FLUSH": "false"}
	clcfg, err := cfgval.New(clusterTemplate, clusterOverrides)
	if err != nil {
		log.Fatalf("cluster config: %v", err)
	}

	fmt.Printf("Num nodes = %s\n", cfgval.MustGet[string](clcfg, NumNodes))
	fmt.Printf("ZK Timeout = %s\n", cfgval.MustGet[string](clcfg, ZKTimeout))
	fmt.Printf("Shared FS Type = %s\n", cfgval.MustGet[string](dbcfg, SharedFSType))

	fmt.Printf("Stridesize = %d (as int)\n", cfgval.MustGet[int](dbcfg, StrideSize))
	fmt.Printf("Stridesize = %d (as int64)\n", cfgval.MustGet[int64](dbcfg, StrideSize))
	fmt.Printf("Num nodes = %d (as uint8)\n", cfgval.MustGet[uint8](clcfg, NumNodes))
	fmt.Printf("Quorum Write = %t\n", cfgval.MustGet[bool](clcfg, QuorumWrite))

	// Runtime update of the one updatable parameter.
	if err := dbcfg.Set(CacheMemSize, fmt.Sprintf("%d", 4096*1000)); err != nil {
		log.Fatalf("set cache size: %v", err)
	}
	fmt.Printf("Cache mem size = %d (as uint64)\n", cfgval.MustGet[uint64](dbcfg, CacheMemSize))

	fmt.Printf("Insert flush = %t\n", cfgval.MustGet[bool](clcfg, InsertFlush))
	fmt.Printf("Num nodes = %d (as uint64)\n", cfgval.MustGet[uint64](clcfg, NumNodes))

	// Narrowing keeps only the low 8 bits: 4096000 % 256 = 0.
	fmt.Printf("Cache mem size = %d (as uint8)\n", cfgval.MustGet[uint8](dbcfg, CacheMemSize))

	// Read-only parameters reject Set.
	if err := clcfg.Set(InsertFlush, "true"); err != nil {
		var roErr *cfgval.ReadOnlyError
		if errors.As(err, &roErr) {
			fmt.Printf("Expected failure: %v\n", roErr)
		}
	}

	fmt.Print(dbcfg.Describe())
}
