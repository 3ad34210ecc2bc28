package interp

import (
	"sort"

	"github.com/katalvlaran/lvlath-eda/celllib"
)

// Bilinear interpolates tbl at the given query slew (picoseconds) and
// query load (femtofarads), returning a result in picoseconds.
func Bilinear(tbl celllib.Table, querySlewPs, queryLoadFF float64) float64 {
	tau := querySlewPs / 1000.0 // ps -> ns

	i1, i2 := locate(tbl.SlewBreakpointsNs, tau)
	j1, j2 := locate(tbl.LoadBreakpointsFF, queryLoadFF)

	v11 := tbl.Values[i1][j1]
	v12 := tbl.Values[i1][j2]
	v21 := tbl.Values[i2][j1]
	v22 := tbl.Values[i2][j2]

	t1 := tbl.SlewBreakpointsNs[i1]
	t2 := tbl.SlewBreakpointsNs[i2]
	c1 := tbl.LoadBreakpointsFF[j1]
	c2 := tbl.LoadBreakpointsFF[j2]

	var out float64
	switch {
	case i1 == i2 && j1 == j2:
		// both queries at or beyond a table edge (index collapse in both
		// dimensions).
		out = v11
	case i1 == i2:
		// only load varies.
		if c1 == c2 {
			out = v11
		} else {
			out = ((c2-queryLoadFF)*v11 + (queryLoadFF-c1)*v12) / (c2 - c1)
		}
	case j1 == j2:
		// only slew varies.
		if t1 == t2 {
			out = v11
		} else {
			out = ((t2-tau)*v11 + (tau-t1)*v21) / (t2 - t1)
		}
	default:
		// full bilinear; i1/i2 and j1/j2 both bracket an interior query
		// here (a boundary query collapses one pair to i1==i2 or j1==j2
		// above), so tau and queryLoadFF are used directly.
		out = (v11*(c2-queryLoadFF)*(t2-tau) +
			v12*(queryLoadFF-c1)*(t2-tau) +
			v21*(c2-queryLoadFF)*(tau-t1) +
			v22*(queryLoadFF-c1)*(tau-t1)) /
			((c2 - c1) * (t2 - t1))
	}

	return out * 1000.0 // ns -> ps
}

// locate brackets x within breakpoints, clamping the index selection only
// (never the query value itself): values at or below the first breakpoint
// collapse to index 0; values at or above the last collapse to the last
// index; otherwise i1/i2 bracket x via a binary search, with no float
// equality comparisons.
func locate(breakpoints [celllib.TableSize]float64, x float64) (i1, i2 int) {
	if x <= breakpoints[0] {
		return 0, 0
	}
	if x >= breakpoints[celllib.TableSize-1] {
		return celllib.TableSize - 1, celllib.TableSize - 1
	}
	i2 = sort.Search(celllib.TableSize, func(i int) bool { return breakpoints[i] > x })
	i1 = i2 - 1

	return i1, i2
}
