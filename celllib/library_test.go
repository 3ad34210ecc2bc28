package celllib_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-eda/celllib"
	"github.com/stretchr/testify/require"
)

func flatTable(v float64) [][]float64 {
	rows := make([][]float64, celllib.TableSize)
	for i := range rows {
		row := make([]float64, celllib.TableSize)
		for j := range row {
			row[j] = v
		}
		rows[i] = row
	}
	return rows
}

func breakpoints() []float64 {
	return []float64{0, 1, 2, 3, 4, 5, 6}
}

func nandEntry(delay, slew float64, cap float64) celllib.RawEntry {
	return celllib.RawEntry{
		CapacitanceFF: cap,
		DelaySlewNs:   breakpoints(),
		DelayLoadFF:   breakpoints(),
		DelayValues:   flatTable(delay),
		SlewSlewNs:    breakpoints(),
		SlewLoadFF:    breakpoints(),
		SlewValues:    flatTable(slew),
	}
}

func TestBuild_ValidLibrary(t *testing.T) {
	lib, err := celllib.Build(map[string]celllib.RawEntry{
		"NAND": nandEntry(10, 5, 2),
		"INV":  nandEntry(1, 1, 1),
	})
	require.NoError(t, err)

	e, err := lib.Get("NAND")
	require.NoError(t, err)
	require.Equal(t, float64(10), e.Delay.Values[0][0])
	require.Equal(t, float64(5), e.Slew.Values[0][0])

	require.Equal(t, float64(4), lib.DefaultSinkLoadFF())
}

func TestBuild_UnknownGateType(t *testing.T) {
	lib, err := celllib.Build(map[string]celllib.RawEntry{"NAND": nandEntry(10, 5, 2)})
	require.NoError(t, err)
	_, err = lib.Get("XOR")
	require.ErrorIs(t, err, celllib.ErrUnknownGateType)
}

func TestBuild_EmptyGateType(t *testing.T) {
	_, err := celllib.Build(map[string]celllib.RawEntry{"": nandEntry(1, 1, 1)})
	require.ErrorIs(t, err, celllib.ErrEmptyGateType)
}

func TestBuild_NegativeCapacitance(t *testing.T) {
	_, err := celllib.Build(map[string]celllib.RawEntry{"NAND": nandEntry(1, 1, -1)})
	require.ErrorIs(t, err, celllib.ErrNegativeCapacitance)
}

func TestBuild_WrongTableShape(t *testing.T) {
	bad := nandEntry(1, 1, 1)
	bad.DelayValues = bad.DelayValues[:6]
	_, err := celllib.Build(map[string]celllib.RawEntry{"NAND": bad})
	require.ErrorIs(t, err, celllib.ErrTableMalformed)
}

func TestBuild_NonMonotoneBreakpoints(t *testing.T) {
	bad := nandEntry(1, 1, 1)
	bad.DelaySlewNs = []float64{0, 1, 1, 3, 4, 5, 6}
	_, err := celllib.Build(map[string]celllib.RawEntry{"NAND": bad})
	require.ErrorIs(t, err, celllib.ErrTableMalformed)
}

func TestIsSingleInputGateType(t *testing.T) {
	for _, g := range []string{"INV", "BUF", "NOT", "BUFF"} {
		require.True(t, celllib.IsSingleInputGateType(g))
	}
	require.False(t, celllib.IsSingleInputGateType("NAND"))
}
