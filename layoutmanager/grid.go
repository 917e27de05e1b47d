package layoutmanager

import (
	"go.uber.org/zap"

	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/errors"
)

// GridLayoutManager packs variable-span items into fixed-capacity rows.
// Span logic is defined only for vertical flow; the grid provider rejects
// horizontal configurations before a manager is ever constructed.
//
// The maximum span per row is captured once at construction. A provider whose
// max-span source changes later must create a new manager; existing managers
// keep the capacity they were built with.
type GridLayoutManager struct {
	*WrapLayoutManager

	spanForIndex func(index int) int
	maxSpan      int
}

// NewGridLayoutManager creates a grid manager over the given render window.
// maxSpan is the row capacity in grid units, evaluated by the caller at
// construction time.
func NewGridLayoutManager(source LayoutSource, window rlv.Dimension, cached []rlv.Layout, spanForIndex func(index int) int, maxSpan int) (*GridLayoutManager, error) {
	if maxSpan <= 0 {
		return nil, errors.InvalidInput(errors.StageLayout, "max column span must be positive")
	}
	if spanForIndex == nil {
		return nil, errors.InvalidInput(errors.StageLayout, "span lookup is required")
	}
	return &GridLayoutManager{
		WrapLayoutManager: NewWrapLayoutManager(source, window, false, cached),
		spanForIndex:      spanForIndex,
		maxSpan:           maxSpan,
	}, nil
}

// MaxSpan returns the row capacity captured at construction.
func (g *GridLayoutManager) MaxSpan() int {
	return g.maxSpan
}

// SpanForIndex returns the column span for an index, clamped to [1, MaxSpan].
func (g *GridLayoutManager) SpanForIndex(index int) int {
	span := g.spanForIndex(index)
	if span < 1 {
		Logger().Debug("span below one, clamping", zap.Int("index", index), zap.Int("span", span))
		return 1
	}
	if span > g.maxSpan {
		Logger().Debug("span exceeds row capacity, clamping",
			zap.Int("index", index), zap.Int("span", span), zap.Int("maxSpan", g.maxSpan))
		return g.maxSpan
	}
	return span
}
