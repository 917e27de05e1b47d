// Package layoutmanager computes absolute positions for items in a
// virtualized list or grid.
//
// A LayoutManager consumes per-index types and dimensions from a LayoutSource
// (implemented by the provider package) and packs them into a scrollable
// content region. Two implementations are provided:
//
//   - WrapLayoutManager packs items into rows (vertical flow) or columns
//     (horizontal flow), wrapping when an item no longer fits the render
//     window on the main axis.
//   - GridLayoutManager specializes the vertical wrap flow with column-span
//     bookkeeping; the maximum span per row is captured once at construction.
//
// Managers can be seeded with previously computed layouts so that replacing a
// manager (for example on window resize) does not re-derive every item's size
// from scratch. Layouts whose dimension was overridden externally keep their
// forced size across relayouts as long as the item's type is unchanged.
//
// Managers are not safe for concurrent use; they are expected to live on the
// same goroutine as the scroll/measurement logic that drives them.
package layoutmanager
