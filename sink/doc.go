// Package sink persists expected results.
//
// A Result is the numeric array one probe produced for one case, keyed by
// (Probe, Case): for example ("Arma.toeplitz", "Row(zeros(1,1)),Row(kms(1,5).row(0))").
// Every Sink is write-once per key; a second Save for the same key fails with
// ErrAlreadyPersisted and leaves the first result in place.
//
// Implementations:
//
//   - Memory keeps results in process, in insertion order.
//   - Files writes one ASCII matrix per result to <dir>/<probe>(<case>).mat,
//     either raw (rows of space-separated numbers) or with the Armadillo
//     text header. ReadMatrix parses both layouts back.
//   - Badger stores results in an embedded badger key/value store.
//
// All implementations are safe for concurrent use.
package sink
