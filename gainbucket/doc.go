// Package gainbucket implements the two-bank, gain-indexed doubly linked
// list structure the fm package uses to answer "give me an unlocked cell
// of highest gain whose move keeps the partition balanced" in time
// proportional to the buckets scanned from the current maximum downward.
//
// Node storage is owned exclusively by Bucket: it keeps an arena of nodes
// (a slice, recycled via an internal free list) and hands callers a
// Handle — an opaque arena index — rather than letting a cell hold a raw
// pointer back into bucket-owned storage. A Handle equal to -1 (see
// netlist.NoBucketHandle) means "not present."
package gainbucket
