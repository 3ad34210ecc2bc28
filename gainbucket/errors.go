package gainbucket

import "errors"

// Sentinel errors for gainbucket operations.
var (
	// ErrDuplicateInsert indicates Add was called with an ID that already
	// has a live handle in this Bucket.
	ErrDuplicateInsert = errors.New("gainbucket: cell already present")

	// ErrInvalidPartition indicates a partition value outside {0, 1}.
	ErrInvalidPartition = errors.New("gainbucket: partition must be 0 or 1")

	// ErrGainOutOfRange indicates a gain value outside [-maxDegree, maxDegree].
	ErrGainOutOfRange = errors.New("gainbucket: gain out of representable range")

	// ErrHandleNotFound indicates an operation referenced a handle that is
	// not currently live (already removed, or never issued).
	ErrHandleNotFound = errors.New("gainbucket: handle not found")
)
