package balance_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-eda/balance"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidFactor(t *testing.T) {
	for _, r := range []float64{-0.01, 1.01, -1, 2} {
		_, err := balance.New(10, r)
		require.ErrorIs(t, err, balance.ErrInvalidBalanceFactor)
	}
}

func TestNew_ZeroFactorRequiresExactHalves(t *testing.T) {
	m, err := balance.New(4, 0)
	require.NoError(t, err)
	require.Equal(t, 2, m.MinSize())
	require.Equal(t, 2, m.MaxSize())
	require.True(t, m.IsBalanced(2, 2))
	require.False(t, m.IsBalanced(1, 3))
}

func TestNew_FullFactorAllowsAnySplit(t *testing.T) {
	m, err := balance.New(10, 1)
	require.NoError(t, err)
	require.Equal(t, 0, m.MinSize())
	require.Equal(t, 10, m.MaxSize())
	require.True(t, m.IsBalanced(0, 10))
	require.True(t, m.IsBalanced(10, 0))
}

func TestNew_PartialFactor(t *testing.T) {
	// n=10, r=0.2: half=5, minSize=ceil(5*0.8)=4, maxSize=floor(5*1.2)=6.
	m, err := balance.New(10, 0.2)
	require.NoError(t, err)
	require.Equal(t, 4, m.MinSize())
	require.Equal(t, 6, m.MaxSize())
	require.True(t, m.IsBalanced(4, 6))
	require.True(t, m.IsBalanced(5, 5))
	require.False(t, m.IsBalanced(3, 7))
}

func TestModel_Accessors(t *testing.T) {
	m, err := balance.New(8, 0.5)
	require.NoError(t, err)
	require.Equal(t, 8, m.N())
	require.Equal(t, 0.5, m.R())
}
