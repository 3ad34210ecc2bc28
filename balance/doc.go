// Package balance computes and checks legal FM partition sizes from a
// balance factor. A Model is pure and immutable once constructed — unlike
// most lvlath-eda constructors it takes no functional options, because it
// has exactly one tunable (the balance factor) and validating it is the
// whole job.
package balance
