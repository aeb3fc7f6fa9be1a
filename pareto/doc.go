// Package pareto implements the multi-objective extension of the DMY
// engine: label-setting Pareto-front search over vector-valued edge
// costs (spec §4.7), plus three scalarization strategies (weighted sum,
// epsilon-constraint, lexicographic) and knee-point selection.
//
// Unlike the scalar engine, this package does not lift the DMY
// recursion to vectors -- it uses a classical Dijkstra-like label-
// setting search, per spec §9's explicit design note that vector costs
// use straightforward label-setting rather than bounded recursion.
package pareto
