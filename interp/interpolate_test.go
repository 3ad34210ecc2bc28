package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-eda/celllib"
	"github.com/katalvlaran/lvlath-eda/interp"
	"github.com/stretchr/testify/require"
)

func sumTable() celllib.Table {
	var t celllib.Table
	for i := 0; i < celllib.TableSize; i++ {
		t.SlewBreakpointsNs[i] = float64(i)
		t.LoadBreakpointsFF[i] = float64(i)
	}
	for i := 0; i < celllib.TableSize; i++ {
		for j := 0; j < celllib.TableSize; j++ {
			t.Values[i][j] = t.SlewBreakpointsNs[i] + t.LoadBreakpointsFF[j]
		}
	}
	return t
}

func flatTable(v float64) celllib.Table {
	var t celllib.Table
	for i := 0; i < celllib.TableSize; i++ {
		t.SlewBreakpointsNs[i] = float64(i)
		t.LoadBreakpointsFF[i] = float64(i)
		for j := 0; j < celllib.TableSize; j++ {
			t.Values[i][j] = v
		}
	}
	return t
}

// TestBilinear_BreakpointExact covers querying exactly at a breakpoint:
// the result must equal V[i][j]*1000 exactly.
func TestBilinear_BreakpointExact(t *testing.T) {
	tbl := sumTable()
	for i := 0; i < celllib.TableSize; i++ {
		for j := 0; j < celllib.TableSize; j++ {
			got := interp.Bilinear(tbl, tbl.SlewBreakpointsNs[i]*1000, tbl.LoadBreakpointsFF[j])
			want := tbl.Values[i][j] * 1000
			require.InDelta(t, want, got, 1e-9)
		}
	}
}

// TestBilinear_InteriorQuery covers an interior query on a
// V[i][j]=T[i]+C[j] table: the result must be approximately
// (tau/1000 + L) * 1000.
func TestBilinear_InteriorQuery(t *testing.T) {
	tbl := sumTable()
	tauPs := 2500.0 // 2.5 ns
	load := 3.5
	got := interp.Bilinear(tbl, tauPs, load)
	want := (tauPs/1000.0 + load) * 1000.0
	require.InDelta(t, want, got, 1e-6)
}

// TestBilinear_FlatTable covers a constant-valued table: a query anywhere
// returns the constant value regardless of position.
func TestBilinear_FlatTable(t *testing.T) {
	tbl := flatTable(10)
	require.InDelta(t, 10000.0, interp.Bilinear(tbl, 2500, 3), 1e-9)
	require.InDelta(t, 10000.0, interp.Bilinear(tbl, -500, -1), 1e-9)
	require.InDelta(t, 10000.0, interp.Bilinear(tbl, 9000, 100), 1e-9)
}

// TestBilinear_Monotone covers a monotone-non-decreasing table: it must
// yield a monotone-non-decreasing interpolator in both dimensions.
func TestBilinear_Monotone(t *testing.T) {
	tbl := sumTable()
	prevSlew := math.Inf(-1)
	for tauPs := -1000.0; tauPs <= 7000.0; tauPs += 250 {
		got := interp.Bilinear(tbl, tauPs, 3)
		require.GreaterOrEqual(t, got, prevSlew)
		prevSlew = got
	}
	prevLoad := math.Inf(-1)
	for load := -1.0; load <= 7.0; load += 0.25 {
		got := interp.Bilinear(tbl, 3000, load)
		require.GreaterOrEqual(t, got, prevLoad)
		prevLoad = got
	}
}

// TestBilinear_OnlyLoadVaries covers a query slew exactly on an interior
// breakpoint with the load strictly interior: the slew bracket is
// (2, 3) with zero weight on row 3, so the result is row 2 interpolated
// in load alone.
func TestBilinear_OnlyLoadVaries(t *testing.T) {
	tbl := sumTable()
	got := interp.Bilinear(tbl, 2000, 3.5) // slew exactly at breakpoint 2
	want := (2.0 + 3.5) * 1000
	require.InDelta(t, want, got, 1e-9)
}

// TestBilinear_OnlySlewVaries covers a query load exactly on an interior
// breakpoint with the slew strictly interior: column 3 interpolated in
// slew alone.
func TestBilinear_OnlySlewVaries(t *testing.T) {
	tbl := sumTable()
	got := interp.Bilinear(tbl, 2500, 3) // load exactly at breakpoint 3
	want := (2.5 + 3.0) * 1000
	require.InDelta(t, want, got, 1e-9)
}

// TestBilinear_ClampsIndexBeyondRange covers the "clamp index selection
// only" contract: a slew query beyond the table's top breakpoint is
// bracketed to the boundary row (index 6, not an extrapolated value of
// tau itself), while the in-range load dimension still interpolates
// normally off that row.
func TestBilinear_ClampsIndexBeyondRange(t *testing.T) {
	tbl := sumTable()
	got := interp.Bilinear(tbl, 9000, 3) // tau=9ns, beyond max breakpoint 6
	want := (6.0 + 3.0) * 1000           // slew clamped to breakpoint 6, load interpolated normally
	require.InDelta(t, want, got, 1e-9)
}
