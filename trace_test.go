package tvmrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrace_OrderedIsContiguousAscending(t *testing.T) {
	tr := newTrace(5)
	for _, v := range []int32{2, 0, 1, 4, 3} {
		tr.record(v)
	}
	tr.close()

	require.Equal(t, []int32{2, 0, 1, 4, 3}, tr.Arrival())
	require.Equal(t, []int32{0, 1, 2, 3, 4}, tr.Ordered())
}

func TestTrace_PartialOrderedOnEarlyTermination(t *testing.T) {
	tr := newTrace(5)
	for _, v := range []int32{0, 2, 1} {
		tr.record(v)
	}
	tr.close()

	require.Equal(t, []int32{0, 1, 2}, tr.Ordered())
}
