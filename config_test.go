package tvmrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name              string
		primary, fallback string
		fromParallelEntry bool
		want              int
	}{
		{name: "unset, top level, defaults to serial", want: 0},
		{name: "unset, parallel entry, defaults to 3", fromParallelEntry: true, want: 3},
		{name: "primary set", primary: "5", want: 5},
		{name: "fallback used when primary unset", fallback: "7", want: 7},
		{name: "primary takes priority over fallback", primary: "5", fallback: "7", want: 5},
		{name: "primary malformed falls back to fallback", primary: "nope", fallback: "7", want: 7},
		{name: "primary zero falls back, top level default", primary: "0", want: 0},
		{name: "both malformed, top level", primary: "nope", fallback: "nope", want: 0},
		{name: "both malformed, parallel entry", primary: "nope", fallback: "nope", fromParallelEntry: true, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.primary != "" {
				t.Setenv(envNumWorkersPrimary, tt.primary)
			}
			if tt.fallback != "" {
				t.Setenv(envNumWorkersFallback, tt.fallback)
			}
			require.Equal(t, tt.want, ResolveConfig(tt.fromParallelEntry))
		})
	}
}

func TestOptions_conflictingPoolSelection(t *testing.T) {
	require.Panics(t, func() { _ = WithNumWorkers(0) })
}

func TestNew_defaultsToSerialWhenEnvUnset(t *testing.T) {
	g := linearChainGraph(1)
	entities := []Entity{{ID: 0, Kernel: AdaptNullary(func(_, _ []byte) int32 { return 0 })}}

	rt, err := New(g, entities)
	require.NoError(t, err)
	require.Equal(t, 0, rt.cfg.NumWorkers)
}

func TestNew_explicitOptionWinsOverEnv(t *testing.T) {
	t.Setenv(envNumWorkersPrimary, "9")

	g := linearChainGraph(1)
	entities := []Entity{{ID: 0, Kernel: AdaptNullary(func(_, _ []byte) int32 { return 0 })}}

	rt, err := New(g, entities, WithNumWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 2, rt.cfg.NumWorkers)
}
