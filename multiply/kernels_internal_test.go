// SPDX-License-Identifier: MIT

package multiply

import (
	"testing"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/katalvlaran/matperf/parallel"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i%7) - 3
	}

	return out
}

// Each kernel must write exactly its own rows.
func TestKernelsWriteOnlyOwnRows(t *testing.T) {
	const m, k, n = 11, 9, 19
	a, err := matrix.NewDenseFrom(m, k, seq(m*k))
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(k, n, seq(k*n))
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)

	want := make([]int64, m*n)
	naiveRows(a.Data(), b.Data(), want, k, n, parallel.Range{Start: 0, End: m})

	rg := parallel.Range{Start: 3, End: 8}
	for _, s := range Strategies() {
		rhs := b.Data()
		if s.transposed() {
			rhs = bt.Data()
		}
		for _, bs := range []int{1, 4, 64} {
			c := make([]int64, m*n)
			selectKernel(s, a.Data(), rhs, c, k, n, bs)(rg)
			for i := 0; i < m; i++ {
				row := c[i*n : i*n+n]
				if i >= rg.Start && i < rg.End {
					require.Equal(t, want[i*n:i*n+n], row, "%s bs=%d row %d", s, bs, i)
				} else {
					require.Equal(t, make([]int64, n), row, "%s bs=%d row %d", s, bs, i)
				}
			}
		}
	}
}

func TestSelectKernelUnknown(t *testing.T) {
	require.Nil(t, selectKernel[int32](Strategy(77), nil, nil, nil, 0, 0, 1))
}

func TestGatherOptionsDefaults(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, DefaultWorkers, o.workers)
	require.Equal(t, DefaultBlockSize, o.blockSize)
	require.Equal(t, RemainderScalar, o.remainder)
	require.False(t, o.blocking)
	require.NotNil(t, o.observer)
	require.NotNil(t, o.logger)

	o = gatherOptions(WithWorkers(2), WithWorkers(5), WithBlockSize(16))
	require.Equal(t, 5, o.workers)
	require.Equal(t, 16, o.blockSize)
}
