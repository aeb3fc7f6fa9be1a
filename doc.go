// Package dmysssp implements single-source shortest paths on directed
// graphs with non-negative real edge weights, using a recursive,
// pivot-driven, frontier-bounded relaxation scheme (the "DMY" algorithm,
// a mnemonic for Duan-Mao-Yin-style bounded multi-source shortest paths).
//
// The engine is built from four layers, each in its own file: the graph
// substrate (graph.go), scalar frontier primitives (distances.go,
// frontier.go), pivot selection and block partitioning (pivot.go,
// partition.go), and the BMSSP/DMY recursion itself (bmssp.go, driver.go).
// A reference Dijkstra (dijkstra.go) ships alongside for cross-validation;
// the pareto subpackage's weighted-sum scalarization runs the DMY engine.
//
// The core is single-threaded and cooperative: no operation blocks or
// suspends, and a distance/parent array is exclusively owned by the
// SSSP call that allocated it for the duration of that call. Callers
// running concurrent queries against the same graph must allocate
// independent distance arrays per query; the Graph itself is immutable
// after construction and safe to share by read.
package dmysssp
