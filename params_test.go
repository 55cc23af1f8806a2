package post

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p, err := DefaultParams(2048)
	require.NoError(t, err)
	require.Equal(t, 2048, p.NBits)
	require.Equal(t, uint(28), p.DelayDepth)
	require.NoError(t, p.Validate())

	_, err = DefaultParams(512)
	require.Error(t, err)
}

func TestDefaultKeyLengths(t *testing.T) {
	require.Equal(t, []int{1024, 2048, 4096}, DefaultKeyLengths)
	for _, l := range DefaultKeyLengths {
		p, err := DefaultParams(l)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, Params{NBits: 128, DelayDepth: 6}.Validate())
	require.Error(t, Params{NBits: 127, DelayDepth: 6}.Validate())
	require.Error(t, Params{NBits: 8, DelayDepth: 6}.Validate())
	require.Error(t, Params{NBits: 128, DelayDepth: MaxDelayDepth + 1}.Validate())
}
