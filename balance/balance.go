package balance

import (
	"errors"
	"math"
)

// ErrInvalidBalanceFactor indicates a balance factor outside the closed
// interval [0, 1] was supplied to New.
var ErrInvalidBalanceFactor = errors.New("balance: factor must be in [0, 1]")

// Model precomputes the legal min/max partition sizes for a fixed cell
// count n and balance factor r:
//
//	minSize = ceil((n/2)(1-r))
//	maxSize = floor((n/2)(1+r))
type Model struct {
	n       int
	r       float64
	minSize int
	maxSize int
}

// New returns a Model for n total cells and balance factor r. Returns
// ErrInvalidBalanceFactor if r is outside [0, 1].
func New(n int, r float64) (*Model, error) {
	if r < 0 || r > 1 || math.IsNaN(r) {
		return nil, ErrInvalidBalanceFactor
	}
	half := float64(n) / 2.0
	minSize := int(math.Ceil(half * (1 - r)))
	maxSize := int(math.Floor(half * (1 + r)))

	return &Model{n: n, r: r, minSize: minSize, maxSize: maxSize}, nil
}

// N returns the total cell count the Model was constructed with.
func (m *Model) N() int { return m.n }

// R returns the balance factor the Model was constructed with.
func (m *Model) R() float64 { return m.r }

// MinSize returns the minimum legal size for either partition.
func (m *Model) MinSize() int { return m.minSize }

// MaxSize returns the maximum legal size for either partition.
func (m *Model) MaxSize() int { return m.maxSize }

// IsBalanced reports whether both partition sizes fall within
// [MinSize, MaxSize].
func (m *Model) IsBalanced(s0, s1 int) bool {
	return m.minSize <= s0 && s0 <= m.maxSize && m.minSize <= s1 && s1 <= m.maxSize
}
