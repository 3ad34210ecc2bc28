package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlath-eda/netlist"
)

// FormatPartition renders nl's current cut size and two-way partition as
//
//	Cutsize = <int>
//	G1 <count> <cell>...<cell> ;
//	G2 <count> <cell>...<cell> ;
//
// with cell names lexicographically sorted within each side.
func FormatPartition(nl *netlist.FMNetlist) string {
	snap := nl.Snapshot()

	var g1, g2 []string
	for _, c := range nl.Cells() {
		if c.Partition == 0 {
			g1 = append(g1, c.Name)
		} else {
			g2 = append(g2, c.Name)
		}
	}
	sort.Strings(g1)
	sort.Strings(g2)

	var b strings.Builder
	fmt.Fprintf(&b, "Cutsize = %d\n", snap.CutSize)
	fmt.Fprintf(&b, "G1 %d %s ;\n", len(g1), strings.Join(g1, " "))
	fmt.Fprintf(&b, "G2 %d %s ;\n", len(g2), strings.Join(g2, " "))

	return b.String()
}
