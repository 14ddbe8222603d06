// Package demograph builds the synthetic 94-node fan-out/fan-in graph used
// by the demo CLI, matching the node count of the shipped reference
// application's real kernel table (§8 scenario 3) without reproducing its
// undisclosed internal layout: a single source fans out to 46 first-stage
// kernels, each of which feeds exactly one second-stage kernel, all 46 of
// which converge on a single terminal sink — 1 + 46 + 46 + 1 = 94 nodes,
// node 93 the unique terminal with successor_count 0.
package demograph

import "github.com/zikangliang/tvmrt"

// Stage1Width is the fan-out width of the synthetic graph.
const Stage1Width = 46

// NodeCount is the total node count of the synthetic graph (1 source + two
// 46-wide stages + 1 sink).
const NodeCount = 1 + 2*Stage1Width + 1

// Build constructs the static graph description. Node 0 is the source, nodes
// 1..46 are the first fan-out stage, nodes 47..92 are the second fan-in
// stage, and node 93 is the terminal sink.
func Build() *tvmrt.Graph {
	n := NodeCount
	indeg := make([]int32, n)
	succ := make([][]int32, n)
	succCount := make([]int32, n)

	// node 0: source, fans out to 1..46
	succ[0] = make([]int32, Stage1Width)
	for i := 0; i < Stage1Width; i++ {
		succ[0][i] = int32(1 + i)
	}
	succCount[0] = int32(Stage1Width)

	// nodes 1..46: one predecessor (node 0), one successor each (47..92)
	for i := 0; i < Stage1Width; i++ {
		v := 1 + i
		indeg[v] = 1
		succ[v] = []int32{int32(1 + Stage1Width + i)}
		succCount[v] = 1
	}

	// nodes 47..92: one predecessor each, one successor (93, the sink)
	sink := int32(n - 1)
	for i := 0; i < Stage1Width; i++ {
		v := 1 + Stage1Width + i
		indeg[v] = 1
		succ[v] = []int32{sink}
		succCount[v] = 1
	}

	// node 93: sink, indegree 46, no successors
	indeg[sink] = int32(Stage1Width)
	succ[sink] = nil
	succCount[sink] = 0

	return &tvmrt.Graph{
		N:               n,
		InitialIndegree: indeg,
		Successors:      succ,
		SuccessorCount:  succCount,
	}
}
