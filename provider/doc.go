// Package provider maps item indices to view types and dimensions for a
// virtualized list.
//
// A Provider is the seam between the deterministic, cacheable layout model a
// virtualization engine needs for jank-free scrolling and the caller-supplied
// sizing logic that may drift over time. It answers three questions: which
// reusable view template renders index N, what footprint will that rendering
// occupy, and is a previously cached footprint now stale.
//
// The default LayoutProvider is driven by constructor-injected callbacks so
// most integrations never need their own Provider implementation; the
// interface remains for full specialization. GridLayoutProvider adds column
// span semantics for packing variable-width items into fixed-capacity rows.
//
// # Reentrancy
//
// Discrepancy checks reuse a single scratch dimension to avoid allocating on
// the scroll hot path. A provider must therefore be driven from one goroutine
// at a time: a second CheckDimensionDiscrepancy call must not begin before
// the first has returned. No locking is performed.
//
// Providers never recover from failures in the injected callbacks; a panic in
// caller-owned sizing logic propagates to the caller unmodified.
package provider
