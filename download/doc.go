// Package download plans which records of a node to fetch and streams them to disk.
//
// A run goes node by node: the Planner decides skip or fetch for every record,
// the plan is printed as a manifest, then the Executor downloads the fetch set
// sequentially. A failed file never stops the batch, a failed disk write does.
package download
