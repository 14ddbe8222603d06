package demograph

import (
	"unsafe"

	"github.com/zikangliang/tvmrt"
)

// BufferWidth is the element count of every per-node input/output buffer in
// the synthetic graph, chosen to be large enough that a kernel call is
// measurable but small enough that the whole graph's buffers comfortably
// fit in memory for a CLI demo.
const BufferWidth = 1024

// Buffers holds the float32 storage for every node's output plus the single
// shared source buffer feeding node 0. Layout mirrors the shipped reference
// application's single-images-input, single-output-tensor convention,
// generalized to one buffer per node instead of one pair for the whole
// graph, since the synthetic graph has no real per-operator shapes to draw
// on.
type Buffers struct {
	Source []float32
	Node   [][]float32
}

// NewBuffers allocates a zeroed Source buffer and one zeroed output buffer
// per node.
func NewBuffers(n int) *Buffers {
	b := &Buffers{
		Source: make([]float32, BufferWidth),
		Node:   make([][]float32, n),
	}
	for i := range b.Node {
		b.Node[i] = make([]float32, BufferWidth)
	}
	return b
}

func asFloats(p unsafe.Pointer) []float32 { return unsafe.Slice((*float32)(p), BufferWidth) }

// BuildEntities binds every node in the synthetic graph to a trivial
// elementwise kernel: out[i] = in[i] + 1. Node 0 reads the shared Source
// buffer; nodes 1..92 read their unique predecessor's output buffer, and the
// sink reads just one of its 46 predecessors (see input below).
// This is enough to give every node genuine, observable work without
// depending on any undisclosed real operator implementation.
func BuildEntities(b *Buffers) []tvmrt.Entity {
	n := len(b.Node)
	entities := make([]tvmrt.Entity, n)

	input := func(node int) []float32 {
		switch {
		case node == 0:
			return b.Source
		case node >= 1 && node <= Stage1Width:
			return b.Node[0]
		default:
			// nodes 47..92 read from their paired fan-out node (node-46);
			// node 93 (the sink) reads from node 47 as a representative
			// predecessor — a real aggregator would fold over all 46.
			if node == n-1 {
				return b.Node[1+Stage1Width]
			}
			return b.Node[node-Stage1Width]
		}
	}

	for v := 0; v < n; v++ {
		out := b.Node[v]
		in := input(v)
		entities[v] = tvmrt.Entity{
			ID:          int32(v),
			InputCount:  1,
			OutputCount: 1,
			Inputs:      []unsafe.Pointer{unsafe.Pointer(&in[0])},
			Outputs:     []unsafe.Pointer{unsafe.Pointer(&out[0])},
			Kernel: tvmrt.AdaptUnary(func(inp, outp unsafe.Pointer, _, _ []byte) int32 {
				a, o := asFloats(inp), asFloats(outp)
				for i := range o {
					o[i] = a[i] + 1
				}
				return 0
			}),
		}
	}

	return entities
}
