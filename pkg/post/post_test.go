package post

import (
	"testing"

	"github.com/stretchr/testify/require"

	"latticecftp/pkg/cftp"
)

func TestCornerSumRoundTrip(t *testing.T) {
	// S6: reconstructing H from its corner-sum matrix recovers it exactly.
	seed := uint32(55)
	h, _, err := cftp.SampleIce(5, cftp.Options{Seed: &seed})
	require.NoError(t, err)

	csum, err := CornerSum(h)
	require.NoError(t, err)

	recovered := FromCornerSum(csum)
	require.True(t, h.Equal(recovered))
}

func TestASMOrder2FrequencyOfMinusOne(t *testing.T) {
	// S3-style check on order 2 first: structural validity over many seeds.
	for seed := uint32(0); seed < 200; seed++ {
		s := seed
		h, _, err := cftp.SampleIce(2, cftp.Options{Seed: &s})
		require.NoError(t, err)
		asm, err := ASM(h)
		require.NoError(t, err)
		requireValidASM(t, asm, 2)
	}
}

func requireValidASM(t *testing.T, asm [][]int, n int) {
	t.Helper()
	require.Len(t, asm, n)
	for _, row := range asm {
		require.Len(t, row, n)
		sum := 0
		for _, v := range row {
			require.Contains(t, []int{-1, 0, 1}, v)
			sum += v
		}
		require.Equal(t, 1, sum)
	}
	for c := 0; c < n; c++ {
		sum := 0
		for r := 0; r < n; r++ {
			sum += asm[r][c]
		}
		require.Equal(t, 1, sum)
	}
}
