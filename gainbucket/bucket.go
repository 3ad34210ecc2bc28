package gainbucket

// Handle is an opaque, non-owning reference into a Bucket's node arena.
// NoHandle means "not present in any bucket". Handles are stable across
// Remove/Add-cycles performed through UpdateGain only insofar as the
// caller stores whatever value UpdateGain returns; Bucket never exposes
// arena internals beyond this integer.
type Handle = int

// NoHandle is the sentinel "absent" handle value, equal to
// netlist.NoBucketHandle so the two packages agree without importing
// each other.
const NoHandle Handle = -1

// BalanceChecker is the minimal feasibility contract PickBestFeasible
// needs. balance.Model satisfies it; Bucket does not import the balance
// package so the two stay decoupled (accept-interfaces idiom).
type BalanceChecker interface {
	IsBalanced(s0, s1 int) bool
}

// node is one arena slot: a cell ID, the gain/partition it is currently
// filed under (kept in sync with the slot it lives in), and doubly linked
// list pointers within its bank slot. free marks a recycled, unused slot.
type node struct {
	cellID    int
	gain      int
	partition int
	prev      Handle
	next      Handle
	free      bool
}

// bank is one partition's array of gain-indexed slot lists.
type bank struct {
	slots   []Handle // slots[gain+maxDegree] = head handle, or NoHandle
	maxGain int       // highest gain with a non-empty slot, lazily decremented
}

// Bucket is the two-bank gain data structure that backs FM's best-move
// selection. The zero value is not usable; construct with New.
type Bucket struct {
	maxDegree int
	banks     [2]bank
	arena     []node
	freeList  []Handle
	byCell    map[int]Handle // cellID -> live handle, for O(1) Remove/UpdateGain by ID
}

// New returns an empty Bucket sized for gains in [-maxDegree, maxDegree].
// capacityHint pre-sizes the arena to reduce reallocation; 0 is a valid
// "no hint" value.
func New(maxDegree int, capacityHint int) *Bucket {
	size := 2*maxDegree + 1
	b := &Bucket{
		maxDegree: maxDegree,
		byCell:    make(map[int]Handle, capacityHint),
	}
	for p := 0; p < 2; p++ {
		b.banks[p].slots = make([]Handle, size)
		for i := range b.banks[p].slots {
			b.banks[p].slots[i] = NoHandle
		}
		b.banks[p].maxGain = -maxDegree
	}
	if capacityHint > 0 {
		b.arena = make([]node, 0, capacityHint)
	}

	return b
}

// MaxDegree returns the maxDegree the Bucket was constructed with.
func (b *Bucket) MaxDegree() int { return b.maxDegree }

// MaxGain returns the current highest gain in partition p's bank.
func (b *Bucket) MaxGain(p int) int { return b.banks[p].maxGain }

func (b *Bucket) slotIndex(gain int) int { return gain + b.maxDegree }

// Add inserts cellID into partition p's bank at the slot for gain, at the
// head of that slot's list. Returns ErrDuplicateInsert if cellID already
// has a live handle, ErrInvalidPartition or ErrGainOutOfRange on bad input.
func (b *Bucket) Add(cellID, partition, gain int) (Handle, error) {
	if partition != 0 && partition != 1 {
		return NoHandle, ErrInvalidPartition
	}
	if gain < -b.maxDegree || gain > b.maxDegree {
		return NoHandle, ErrGainOutOfRange
	}
	if _, exists := b.byCell[cellID]; exists {
		return NoHandle, ErrDuplicateInsert
	}

	h := b.alloc(cellID, partition, gain)
	idx := b.slotIndex(gain)
	bk := &b.banks[partition]
	b.arena[h].next = bk.slots[idx]
	if bk.slots[idx] != NoHandle {
		b.arena[bk.slots[idx]].prev = h
	}
	bk.slots[idx] = h
	if gain > bk.maxGain {
		bk.maxGain = gain
	}
	b.byCell[cellID] = h

	return h, nil
}

// alloc returns a fresh or recycled arena slot populated with the given
// fields and prev/next set to NoHandle.
func (b *Bucket) alloc(cellID, partition, gain int) Handle {
	if n := len(b.freeList); n > 0 {
		h := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		b.arena[h] = node{cellID: cellID, gain: gain, partition: partition, prev: NoHandle, next: NoHandle}
		return h
	}
	b.arena = append(b.arena, node{cellID: cellID, gain: gain, partition: partition, prev: NoHandle, next: NoHandle})
	return len(b.arena) - 1
}

// Remove unlinks and frees the node for cellID, if present. Idempotent:
// a no-op if cellID has no live handle.
func (b *Bucket) Remove(cellID int) {
	h, ok := b.byCell[cellID]
	if !ok {
		return
	}
	b.removeHandle(h)
}

func (b *Bucket) removeHandle(h Handle) {
	n := &b.arena[h]
	bk := &b.banks[n.partition]
	idx := b.slotIndex(n.gain)

	if n.prev != NoHandle {
		b.arena[n.prev].next = n.next
	} else {
		bk.slots[idx] = n.next
	}
	if n.next != NoHandle {
		b.arena[n.next].prev = n.prev
	}

	delete(b.byCell, n.cellID)
	removedGain := n.gain
	removedPartition := n.partition
	n.free = true
	b.freeList = append(b.freeList, h)

	if removedGain == bk.maxGain {
		b.recomputeMaxGain(removedPartition)
	}
}

// recomputeMaxGain scans slots downward from the current maxGain until a
// non-empty one is found.
func (b *Bucket) recomputeMaxGain(partition int) {
	bk := &b.banks[partition]
	for gain := bk.maxGain; gain >= -b.maxDegree; gain-- {
		if bk.slots[b.slotIndex(gain)] != NoHandle {
			bk.maxGain = gain
			return
		}
	}
	bk.maxGain = -b.maxDegree
}

// UpdateGain moves cellID from oldGain to newGain: equivalent to Remove
// followed by Add, atomic from the caller's perspective. Returns the new
// Handle (which may differ from the cell's previous handle) and
// ErrHandleNotFound if cellID is not currently present.
func (b *Bucket) UpdateGain(cellID, newGain int) (Handle, error) {
	h, ok := b.byCell[cellID]
	if !ok {
		return NoHandle, ErrHandleNotFound
	}
	partition := b.arena[h].partition
	b.removeHandle(h)
	return b.Add(cellID, partition, newGain)
}

// Handle returns the live handle for cellID, or NoHandle if absent.
func (b *Bucket) Handle(cellID int) Handle {
	h, ok := b.byCell[cellID]
	if !ok {
		return NoHandle
	}
	return h
}

// Contains reports whether cellID currently has a live handle.
func (b *Bucket) Contains(cellID int) bool {
	_, ok := b.byCell[cellID]
	return ok
}

// PickBestFeasible scans, for each partition, from maxGain downward and
// takes the first cell whose move to the other partition keeps
// sizes[0]/sizes[1] balanced per bc.
// Between the two partitions' first feasible candidates, the one with the
// strictly higher gain wins; ties prefer partition 0. Returns ok=false if
// neither partition has a feasible move.
func (b *Bucket) PickBestFeasible(sizes [2]int, bc BalanceChecker) (cellID, partition, gain int, ok bool) {
	type candidate struct {
		cellID, gain int
		ok           bool
	}
	var cands [2]candidate

	for p := 0; p < 2; p++ {
		other := 1 - p
		bk := &b.banks[p]
	gainScan:
		for g := bk.maxGain; g >= -b.maxDegree; g-- {
			h := bk.slots[b.slotIndex(g)]
			for h != NoHandle {
				n := &b.arena[h]
				newSizeP := sizes[p] - 1
				newSizeOther := sizes[other] + 1
				var s0, s1 int
				if p == 0 {
					s0, s1 = newSizeP, newSizeOther
				} else {
					s0, s1 = newSizeOther, newSizeP
				}
				if bc.IsBalanced(s0, s1) {
					cands[p] = candidate{cellID: n.cellID, gain: g, ok: true}
					break gainScan
				}
				h = n.next
			}
		}
	}

	switch {
	case cands[0].ok && cands[1].ok:
		if cands[1].gain > cands[0].gain {
			return cands[1].cellID, 1, cands[1].gain, true
		}
		return cands[0].cellID, 0, cands[0].gain, true
	case cands[0].ok:
		return cands[0].cellID, 0, cands[0].gain, true
	case cands[1].ok:
		return cands[1].cellID, 1, cands[1].gain, true
	default:
		return 0, 0, 0, false
	}
}

// Len returns the number of cells currently held across both banks.
func (b *Bucket) Len() int { return len(b.byCell) }
