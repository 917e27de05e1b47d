package provider

import (
	"testing"

	rlv "github.com/saggiyogesh/recyclerlistview"
)

// newSampleProvider classifies every third index as a header and sizes
// headers at 100x320 and rows at 50x320.
func newSampleProvider() *LayoutProvider {
	return NewLayoutProvider(
		func(index int) rlv.ViewType {
			if index%3 == 0 {
				return "header"
			}
			return "row"
		},
		func(t rlv.ViewType, dim *rlv.Dimension, index int) {
			dim.Width = 320
			if t == "header" {
				dim.Height = 100
			} else {
				dim.Height = 50
			}
		},
	)
}

func TestLayoutTypeForIndex(t *testing.T) {
	p := newSampleProvider()

	tests := []struct {
		index int
		want  rlv.ViewType
	}{
		{0, "header"},
		{1, "row"},
		{2, "row"},
		{3, "header"},
		{7, "row"},
		{9, "header"},
	}

	for _, tt := range tests {
		if got := p.LayoutTypeForIndex(tt.index); got != tt.want {
			t.Errorf("LayoutTypeForIndex(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestLayoutTypeForIndex_Deterministic(t *testing.T) {
	p := newSampleProvider()
	for i := 0; i < 20; i++ {
		first := p.LayoutTypeForIndex(i)
		second := p.LayoutTypeForIndex(i)
		if first != second {
			t.Fatalf("index %d classified as %q then %q", i, first, second)
		}
	}
}

func TestSetComputedLayout(t *testing.T) {
	p := newSampleProvider()

	var dim rlv.Dimension
	p.SetComputedLayout("header", &dim, 0)
	if dim.Height != 100 || dim.Width != 320 {
		t.Errorf("header dimension = %+v, want 100x320", dim)
	}

	p.SetComputedLayout("row", &dim, 1)
	if dim.Height != 50 || dim.Width != 320 {
		t.Errorf("row dimension = %+v, want 50x320", dim)
	}
}

func TestCheckDimensionDiscrepancy(t *testing.T) {
	tests := []struct {
		name  string
		dim   rlv.Dimension
		typ   rlv.ViewType
		index int
		want  bool
	}{
		{
			name:  "matching row",
			dim:   rlv.Dimension{Height: 50, Width: 320},
			typ:   "row",
			index: 1,
			want:  false,
		},
		{
			name:  "matching header",
			dim:   rlv.Dimension{Height: 100, Width: 320},
			typ:   "header",
			index: 3,
			want:  false,
		},
		{
			name:  "stale height",
			dim:   rlv.Dimension{Height: 50, Width: 320},
			typ:   "header",
			index: 3,
			want:  true,
		},
		{
			name:  "stale width",
			dim:   rlv.Dimension{Height: 100, Width: 300},
			typ:   "header",
			index: 0,
			want:  true,
		},
		{
			name:  "both stale",
			dim:   rlv.Dimension{Height: 10, Width: 10},
			typ:   "row",
			index: 2,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newSampleProvider()
			if got := p.CheckDimensionDiscrepancy(tt.dim, tt.typ, tt.index); got != tt.want {
				t.Errorf("CheckDimensionDiscrepancy(%+v, %q, %d) = %v, want %v",
					tt.dim, tt.typ, tt.index, got, tt.want)
			}
		})
	}
}

func TestCheckDimensionDiscrepancy_Repeatable(t *testing.T) {
	p := newSampleProvider()
	dim := rlv.Dimension{Height: 50, Width: 320}

	for i := 0; i < 5; i++ {
		if p.CheckDimensionDiscrepancy(dim, "row", 1) {
			t.Fatalf("call %d reported a discrepancy for an unchanged dimension", i)
		}
	}
	if dim.Height != 50 || dim.Width != 320 {
		t.Errorf("caller dimension mutated to %+v", dim)
	}
}

func TestCheckDimensionDiscrepancy_ExternalStateChange(t *testing.T) {
	rowHeight := 50.0
	p := NewLayoutProvider(
		func(index int) rlv.ViewType { return "row" },
		func(t rlv.ViewType, dim *rlv.Dimension, index int) {
			dim.Height = rowHeight
			dim.Width = 320
		},
	)

	cached := rlv.Dimension{Height: 50, Width: 320}
	if p.CheckDimensionDiscrepancy(cached, "row", 4) {
		t.Fatal("unexpected discrepancy before state change")
	}

	rowHeight = 64
	if !p.CheckDimensionDiscrepancy(cached, "row", 4) {
		t.Fatal("expected discrepancy after external state change")
	}
}

// A freshly computed dimension is propagated to the last created manager as
// max bounds on every check, so an oversized computation is clamped to the
// render window before comparison.
func TestCheckDimensionDiscrepancy_BoundsPropagation(t *testing.T) {
	p := NewLayoutProvider(
		func(index int) rlv.ViewType { return "row" },
		func(t rlv.ViewType, dim *rlv.Dimension, index int) {
			dim.Height = 50
			dim.Width = 400 // wider than any window
		},
	)

	cached := rlv.Dimension{Height: 50, Width: 320}

	// Without a manager there is nothing to clamp: 400 != 320.
	if !p.CheckDimensionDiscrepancy(cached, "row", 0) {
		t.Fatal("expected discrepancy with no manager attached")
	}

	if _, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 320}, false, nil); err != nil {
		t.Fatalf("NewLayoutManager: %v", err)
	}

	// The manager clamps 400 down to the window width before comparison.
	if p.CheckDimensionDiscrepancy(cached, "row", 0) {
		t.Fatal("expected no discrepancy once bounds are clamped by the manager")
	}
}

func TestNewLayoutManager_ReplacesTrackedManager(t *testing.T) {
	p := newSampleProvider()

	m1, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 320}, false, nil)
	if err != nil {
		t.Fatalf("first NewLayoutManager: %v", err)
	}
	m2, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 640}, false, nil)
	if err != nil {
		t.Fatalf("second NewLayoutManager: %v", err)
	}
	if m1 == m2 {
		t.Fatal("expected a fresh manager per call")
	}
	if p.lastManager != m2 {
		t.Fatal("provider does not track the most recent manager")
	}
}

func TestNewLayoutManager_WarmStart(t *testing.T) {
	p := newSampleProvider()

	m1, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 320}, false, nil)
	if err != nil {
		t.Fatalf("NewLayoutManager: %v", err)
	}
	m1.RelayoutFromIndex(0, 9)

	m2, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 320}, false, m1.Layouts())
	if err != nil {
		t.Fatalf("NewLayoutManager with cache: %v", err)
	}
	if got, want := len(m2.Layouts()), 9; got != want {
		t.Fatalf("cached layouts = %d entries, want %d", got, want)
	}
	for i, l := range m1.Layouts() {
		got, err := m2.LayoutForIndex(i)
		if err != nil {
			t.Fatalf("LayoutForIndex(%d): %v", i, err)
		}
		if got != l {
			t.Errorf("index %d: warm-started layout %+v, want %+v", i, got, l)
		}
	}
}
