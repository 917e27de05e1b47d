package layoutmanager

import (
	"math"

	"go.uber.org/zap"

	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/errors"
)

// boundsEpsilon absorbs floating point drift from span division when testing
// whether an item still fits the current row.
const boundsEpsilon = 1e-6

// WrapLayoutManager packs items into rows (vertical flow) or columns
// (horizontal flow), wrapping at the render window's main axis extent.
type WrapLayoutManager struct {
	source     LayoutSource
	window     rlv.Dimension
	horizontal bool

	layouts []rlv.Layout
	content rlv.Dimension
}

// NewWrapLayoutManager creates a wrap manager over the given render window.
// cached seeds the manager with previously computed layouts; entries are
// copied, the caller's slice is not retained.
func NewWrapLayoutManager(source LayoutSource, window rlv.Dimension, horizontal bool, cached []rlv.Layout) *WrapLayoutManager {
	m := &WrapLayoutManager{
		source:     source,
		window:     window,
		horizontal: horizontal,
	}
	if len(cached) > 0 {
		m.layouts = append(make([]rlv.Layout, 0, len(cached)), cached...)
		m.recomputeContent()
	}
	return m
}

// ContentDimension implements LayoutManager.
func (m *WrapLayoutManager) ContentDimension() rlv.Dimension {
	return m.content
}

// Layouts implements LayoutManager.
func (m *WrapLayoutManager) Layouts() []rlv.Layout {
	return m.layouts
}

// LayoutForIndex implements LayoutManager.
func (m *WrapLayoutManager) LayoutForIndex(index int) (rlv.Layout, error) {
	if index < 0 || index >= len(m.layouts) {
		return rlv.Layout{}, errors.OutOfBounds(errors.StageLayout, index, len(m.layouts))
	}
	return m.layouts[index], nil
}

// OffsetForIndex implements LayoutManager.
func (m *WrapLayoutManager) OffsetForIndex(index int) (x, y float64, err error) {
	l, err := m.LayoutForIndex(index)
	if err != nil {
		return 0, 0, err
	}
	return l.X, l.Y, nil
}

// OverrideLayout implements LayoutManager.
func (m *WrapLayoutManager) OverrideLayout(index int, dim rlv.Dimension) bool {
	if index < 0 || index >= len(m.layouts) {
		return false
	}
	l := &m.layouts[index]
	l.Dimension = dim
	l.Overridden = true
	return true
}

// SetMaxBounds implements LayoutManager. The cross axis is clamped to the
// render window so a single oversized item cannot widen every row.
func (m *WrapLayoutManager) SetMaxBounds(dim *rlv.Dimension) {
	if m.horizontal {
		dim.Height = math.Min(dim.Height, m.window.Height)
	} else {
		dim.Width = math.Min(dim.Width, m.window.Width)
	}
}

// RelayoutFromIndex implements LayoutManager.
func (m *WrapLayoutManager) RelayoutFromIndex(startIndex, itemCount int) {
	if itemCount < 0 {
		itemCount = 0
	}
	start := m.locateFirstNeighbour(startIndex)

	var startX, startY, maxBound float64
	if start < len(m.layouts) {
		startX = m.layouts[start].X
		startY = m.layouts[start].Y
	}

	var dim rlv.Dimension
	for i := start; i < itemCount; i++ {
		t := m.source.LayoutTypeForIndex(i)

		overridden := i < len(m.layouts) && m.layouts[i].Overridden && m.layouts[i].Type == t
		if overridden {
			dim = m.layouts[i].Dimension
		} else {
			m.source.SetComputedLayout(t, &dim, i)
		}
		m.SetMaxBounds(&dim)

		if !m.fits(startX, startY, dim) {
			if m.horizontal {
				startX += maxBound
				startY = 0
			} else {
				startX = 0
				startY += maxBound
			}
			maxBound = 0
		}
		if m.horizontal {
			maxBound = math.Max(maxBound, dim.Width)
		} else {
			maxBound = math.Max(maxBound, dim.Height)
		}

		l := rlv.Layout{
			Dimension:  dim,
			X:          startX,
			Y:          startY,
			Type:       t,
			Overridden: overridden,
		}
		if i < len(m.layouts) {
			m.layouts[i] = l
		} else {
			m.layouts = append(m.layouts, l)
		}

		if m.horizontal {
			startY += dim.Height
		} else {
			startX += dim.Width
		}
	}

	if len(m.layouts) > itemCount {
		m.layouts = m.layouts[:itemCount]
	}
	m.recomputeContent()

	Logger().Debug("relayout",
		zap.Int("from", start),
		zap.Int("items", itemCount),
		zap.Float64("contentHeight", m.content.Height),
		zap.Float64("contentWidth", m.content.Width),
	)
}

// VisibleRange implements LayoutManager.
func (m *WrapLayoutManager) VisibleRange(offset, extent float64) (first, last int) {
	first, last = 0, -1
	end := offset + extent
	found := false
	for i := range m.layouts {
		var lo, hi float64
		if m.horizontal {
			lo, hi = m.layouts[i].X, m.layouts[i].X+m.layouts[i].Width
		} else {
			lo, hi = m.layouts[i].Y, m.layouts[i].Y+m.layouts[i].Height
		}
		// Rows are ordered on the main axis; once past the window nothing
		// later can intersect it.
		if lo >= end {
			break
		}
		if hi <= offset {
			continue
		}
		if !found {
			first = i
			found = true
		}
		last = i
	}
	return first, last
}

// fits reports whether an item placed at (x, y) stays inside the render
// window's main axis. An item at a row start always fits.
func (m *WrapLayoutManager) fits(x, y float64, dim rlv.Dimension) bool {
	if m.horizontal {
		return y == 0 || y+dim.Height <= m.window.Height+boundsEpsilon
	}
	return x == 0 || x+dim.Width <= m.window.Width+boundsEpsilon
}

// locateFirstNeighbour walks back to the first index of the row containing
// startIndex so a relayout always begins at a row boundary.
func (m *WrapLayoutManager) locateFirstNeighbour(startIndex int) int {
	if startIndex <= 0 {
		return 0
	}
	if startIndex > len(m.layouts) {
		startIndex = len(m.layouts)
	}
	i := startIndex - 1
	for ; i > 0; i-- {
		if m.horizontal {
			if m.layouts[i].Y == 0 {
				break
			}
		} else if m.layouts[i].X == 0 {
			break
		}
	}
	return i
}

func (m *WrapLayoutManager) recomputeContent() {
	var maxEnd float64
	for i := range m.layouts {
		var end float64
		if m.horizontal {
			end = m.layouts[i].X + m.layouts[i].Width
		} else {
			end = m.layouts[i].Y + m.layouts[i].Height
		}
		maxEnd = math.Max(maxEnd, end)
	}
	if m.horizontal {
		m.content = rlv.Dimension{Height: m.window.Height, Width: maxEnd}
	} else {
		m.content = rlv.Dimension{Height: maxEnd, Width: m.window.Width}
	}
}
