package tvmrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraph_validate(t *testing.T) {
	tests := []struct {
		name    string
		graph   Graph
		wantErr error
	}{
		{
			name:  "empty graph is valid",
			graph: Graph{},
		},
		{
			name: "single node with no predecessors is valid",
			graph: Graph{
				N:               1,
				InitialIndegree: []int32{0},
				Successors:      [][]int32{{}},
				SuccessorCount:  []int32{0},
			},
		},
		{
			name: "mismatched slice lengths",
			graph: Graph{
				N:               2,
				InitialIndegree: []int32{0},
				Successors:      [][]int32{{}, {}},
				SuccessorCount:  []int32{0, 0},
			},
			wantErr: ErrResourceAllocation,
		},
		{
			name: "successor_count exceeds successors length",
			graph: Graph{
				N:               2,
				InitialIndegree: []int32{0, 1},
				Successors:      [][]int32{{1}, {}},
				SuccessorCount:  []int32{2, 0},
			},
			wantErr: ErrSuccessorCountMismatch,
		},
		{
			name: "no node with zero indegree",
			graph: Graph{
				N:               2,
				InitialIndegree: []int32{1, 1},
				Successors:      [][]int32{{1}, {0}},
				SuccessorCount:  []int32{1, 1},
			},
			wantErr: ErrEmptyReadySet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGraph_initialReady(t *testing.T) {
	g := Graph{
		N:               4,
		InitialIndegree: []int32{0, 1, 0, 2},
		Successors:      [][]int32{{1, 3}, {3}, {3}, {}},
		SuccessorCount:  []int32{2, 1, 1, 0},
	}
	require.Equal(t, []int32{0, 2}, g.initialReady())
}
