package provider

import (
	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/errors"
	"github.com/saggiyogesh/recyclerlistview/layoutmanager"
)

// HeightForIndexFunc returns the height of an item, independent of its width.
type HeightForIndexFunc func(index int) float64

// SpanForIndexFunc returns how many grid units wide an item is.
type SpanForIndexFunc func(index int) int

// MaxSpanFunc returns the row capacity in grid units. It is re-queried on
// every dimension computation, so the capacity may change over the provider's
// lifetime; a layout manager captures the value current at its construction.
type MaxSpanFunc func() int

// GridLayoutProvider specializes LayoutProvider with column-span semantics.
// Item widths are derived from the render window: an item spanning s of m
// grid units is s/m of the window width. Heights come from the injected
// height callback.
//
// Grid span logic is defined only for vertical flow. Requesting a horizontal
// manager is a configuration error surfaced at setup time.
type GridLayoutProvider struct {
	LayoutProvider

	heightForIndex HeightForIndexFunc
	spanForIndex   SpanForIndexFunc
	maxSpan        MaxSpanFunc

	// renderWindow is recorded each time a manager is created; span-derived
	// widths are zero until then.
	renderWindow rlv.Dimension
}

var _ Provider = (*GridLayoutProvider)(nil)

// NewGridLayoutProvider creates a grid provider from four callbacks. The
// dimension callback slot of the embedded LayoutProvider is filled internally
// so the base discrepancy-check behavior applies unchanged.
func NewGridLayoutProvider(typeForIndex TypeForIndexFunc, heightForIndex HeightForIndexFunc, spanForIndex SpanForIndexFunc, maxSpan MaxSpanFunc) *GridLayoutProvider {
	g := &GridLayoutProvider{
		heightForIndex: heightForIndex,
		spanForIndex:   spanForIndex,
		maxSpan:        maxSpan,
	}
	g.LayoutProvider = *NewLayoutProvider(typeForIndex, g.setGridLayout)
	return g
}

// NewLayoutManager implements Provider. Horizontal flow is unsupported for
// grids and fails fast; vertical flow constructs a grid manager whose row
// capacity is the max-span value evaluated at this call.
func (g *GridLayoutProvider) NewLayoutManager(renderWindow rlv.Dimension, horizontal bool, cached []rlv.Layout) (layoutmanager.LayoutManager, error) {
	if horizontal {
		return nil, errors.Unsupported(errors.StageLayout, "grid layout does not support horizontal flow")
	}
	g.renderWindow = renderWindow
	m, err := layoutmanager.NewGridLayoutManager(g, renderWindow, cached, g.ColumnSpanForIndex, g.MaxColumnSpan())
	if err != nil {
		return nil, err
	}
	g.lastManager = m
	return m, nil
}

// MaxColumnSpan returns the current row capacity from the injected callback.
func (g *GridLayoutProvider) MaxColumnSpan() int {
	return g.maxSpan()
}

// ColumnSpanForIndex returns the column span for an index from the injected
// callback.
func (g *GridLayoutProvider) ColumnSpanForIndex(index int) int {
	return g.spanForIndex(index)
}

// SetHeightForIndex writes the item's height into dim, leaving the width
// untouched.
func (g *GridLayoutProvider) SetHeightForIndex(dim *rlv.Dimension, index int) {
	dim.Height = g.heightForIndex(index)
}

// setGridLayout is the internal dimension callback handed to the embedded
// base provider. Spans outside [1, maxSpan] are clamped.
func (g *GridLayoutProvider) setGridLayout(_ rlv.ViewType, dim *rlv.Dimension, index int) {
	maxSpan := g.maxSpan()
	span := g.spanForIndex(index)
	if span < 1 {
		span = 1
	}
	if span > maxSpan {
		span = maxSpan
	}
	g.SetHeightForIndex(dim, index)
	if maxSpan > 0 {
		dim.Width = g.renderWindow.Width / float64(maxSpan) * float64(span)
	} else {
		dim.Width = 0
	}
}
