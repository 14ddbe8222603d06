package tvmrt

import (
	"errors"
	"fmt"
)

// Namespace prefixes every sentinel error in this package.
const Namespace = "tvmrt"

var (
	// ErrEmptyReadySet is a GraphPrecondition failure: N > 0 but no node has
	// an initial indegree of zero, so the engine could never make progress.
	ErrEmptyReadySet = errors.New(Namespace + ": initial ready set is empty for a non-empty graph")

	// ErrSuccessorCountMismatch is a GraphPrecondition failure: a node's
	// declared successor_count exceeds the length of its successors slice.
	ErrSuccessorCountMismatch = errors.New(Namespace + ": successor_count exceeds successors slice length")

	// ErrEntityCountMismatch is a GraphPrecondition failure: the entity
	// table length does not match the graph's node count, or an entity's
	// InputCount/OutputCount exceeds the length of its Inputs/Outputs slice.
	ErrEntityCountMismatch = errors.New(Namespace + ": entity table length does not match node count")

	// ErrResourceAllocation is returned by New when the run state cannot be
	// sized from the graph: N is negative, or InitialIndegree, Successors and
	// SuccessorCount do not all have length N.
	ErrResourceAllocation = errors.New(Namespace + ": failed to allocate runtime state")

	// ErrNilGraph is returned by New when the supplied graph is nil.
	ErrNilGraph = errors.New(Namespace + ": nil graph")

	// ErrNilKernel is a GraphPrecondition failure: an entity is bound to a
	// nil kernel function.
	ErrNilKernel = errors.New(Namespace + ": entity bound to a nil kernel")
)

// NodeStatusError exposes correlation metadata for a kernel failure: the
// node id that produced it and the raw status code it returned. Inside a run
// a kernel failure travels as a raw int32 status held by the error latch;
// Run converts the latched (node, status) pair into a *NodeStatusError at the
// package boundary, so callers (the demo CLI, integration tests) get an
// idiomatic error value instead of a bare code.
type NodeStatusError struct {
	nodeID int32
	status int32
}

// NewNodeStatusError builds a NodeStatusError for the given node/status pair.
// status must be non-zero; NewNodeStatusError panics otherwise, since a zero
// status never represents a failure.
func NewNodeStatusError(nodeID, status int32) *NodeStatusError {
	if status == 0 {
		panic("tvmrt: NewNodeStatusError called with a zero status")
	}
	return &NodeStatusError{nodeID: nodeID, status: status}
}

func (e *NodeStatusError) Error() string {
	return fmt.Sprintf("%s: node %d returned status %d", Namespace, e.nodeID, e.status)
}

// NodeID returns the id of the node that produced this failure.
func (e *NodeStatusError) NodeID() int32 { return e.nodeID }

// Status returns the raw non-zero kernel status code.
func (e *NodeStatusError) Status() int32 { return e.status }
