// Package registry holds the host-configured tables the decoder consults:
// the class universe (name -> Go type), load tags (exact tag -> class), and
// domain types (normalized tag -> post-processing transform).
//
// A Registry may be configured at any time; each decode pass works on a
// Snapshot taken when the pass starts, so configuration changes never affect a
// pass in flight.
package registry
