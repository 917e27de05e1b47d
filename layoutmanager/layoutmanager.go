package layoutmanager

import (
	rlv "github.com/saggiyogesh/recyclerlistview"
)

// LayoutSource supplies per-index classification and dimensions.
// It is implemented by the provider package; the manager never caches its
// results beyond the committed layouts.
type LayoutSource interface {
	// LayoutTypeForIndex classifies an index into a view type.
	LayoutTypeForIndex(index int) rlv.ViewType

	// SetComputedLayout writes the dimension for (type, index) into dim.
	// Output-parameter style keeps relayout allocation-free.
	SetComputedLayout(t rlv.ViewType, dim *rlv.Dimension, index int)
}

// LayoutManager computes and stores absolute positions for all indices of a
// list. It is created through a provider's NewLayoutManager and owned by its
// caller; providers hold only a non-owning reference for bounds propagation.
type LayoutManager interface {
	// ContentDimension returns the total scrollable extent of the laid out
	// content.
	ContentDimension() rlv.Dimension

	// Layouts returns the committed layouts. The slice is live; callers may
	// snapshot it to seed a replacement manager but must not mutate entries.
	Layouts() []rlv.Layout

	// LayoutForIndex returns the committed layout for an index, or an
	// out-of-bounds error when no layout exists for it.
	LayoutForIndex(index int) (rlv.Layout, error)

	// OffsetForIndex returns the top-left position of an index.
	OffsetForIndex(index int) (x, y float64, err error)

	// OverrideLayout forces the dimension for an index, marking it so that
	// subsequent relayouts keep the forced size while the type matches.
	// Reports whether the index had a layout to override.
	OverrideLayout(index int, dim rlv.Dimension) bool

	// SetMaxBounds clamps dim's cross axis to the render window.
	SetMaxBounds(dim *rlv.Dimension)

	// RelayoutFromIndex recomputes positions from the row containing
	// startIndex through itemCount-1, trimming stale tail layouts when the
	// item count shrank.
	RelayoutFromIndex(startIndex, itemCount int)

	// VisibleRange returns the inclusive index range intersecting the main
	// axis window [offset, offset+extent). last is -1 when nothing is
	// visible.
	VisibleRange(offset, extent float64) (first, last int)
}
