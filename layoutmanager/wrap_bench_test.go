package layoutmanager

import (
	"testing"

	rlv "github.com/saggiyogesh/recyclerlistview"
)

func BenchmarkRelayoutFromIndex_10kItems(b *testing.B) {
	m := NewWrapLayoutManager(uniformSource(160, 50), window, false, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RelayoutFromIndex(0, 10000)
	}
}

func BenchmarkRelayoutFromIndex_TailOnly(b *testing.B) {
	m := NewWrapLayoutManager(uniformSource(160, 50), window, false, nil)
	m.RelayoutFromIndex(0, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RelayoutFromIndex(9900, 10000)
	}
}

func BenchmarkVisibleRange(b *testing.B) {
	m := NewWrapLayoutManager(uniformSource(320, 50), window, false, nil)
	m.RelayoutFromIndex(0, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.VisibleRange(float64(i%400000), 480)
	}
}

func BenchmarkLayoutForIndex(b *testing.B) {
	m := NewWrapLayoutManager(uniformSource(320, 50), window, false, nil)
	m.RelayoutFromIndex(0, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.LayoutForIndex(i % 1000); err != nil {
			b.Fatal(err)
		}
	}
}

var sinkDim rlv.Dimension

func BenchmarkSetMaxBounds(b *testing.B) {
	m := NewWrapLayoutManager(uniformSource(320, 50), window, false, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkDim = rlv.Dimension{Height: 50, Width: 400}
		m.SetMaxBounds(&sinkDim)
	}
}
