package fm

// Move records one applied cell reassignment within a pass, in enough
// detail to undo it: the cell, its partitions before and after, the gain
// it was applied at, and the cut size that resulted.
type Move struct {
	CellID           int
	FromPartition    int
	ToPartition      int
	Gain             int
	ResultingCutSize int
}
