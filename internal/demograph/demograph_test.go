package demograph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zikangliang/tvmrt"
)

func TestBuild_shape(t *testing.T) {
	g := Build()
	require.Equal(t, 94, g.N)

	// single source
	sources := 0
	for _, d := range g.InitialIndegree {
		if d == 0 {
			sources++
		}
	}
	require.Equal(t, 1, sources)

	// single terminal
	terminals := 0
	for _, c := range g.SuccessorCount {
		if c == 0 {
			terminals++
		}
	}
	require.Equal(t, 1, terminals)
	require.Equal(t, int32(0), g.SuccessorCount[g.N-1])
	require.Equal(t, int32(Stage1Width), g.InitialIndegree[g.N-1])
}

func TestBuildEntities_runsToCompletion(t *testing.T) {
	g := Build()
	buffers := NewBuffers(g.N)
	entities := BuildEntities(buffers)

	rt, err := tvmrt.New(g, entities, tvmrt.WithSerial())
	require.NoError(t, err)
	require.NoError(t, rt.Run(nil, nil))

	for _, v := range buffers.Node[0] {
		require.Equal(t, float32(1), v)
	}
}
