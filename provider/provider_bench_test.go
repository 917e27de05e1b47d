package provider

import (
	"testing"

	rlv "github.com/saggiyogesh/recyclerlistview"
)

// The discrepancy check sits on the scroll hot path and must not allocate.
func BenchmarkCheckDimensionDiscrepancy(b *testing.B) {
	p := newSampleProvider()
	if _, err := p.NewLayoutManager(rlv.Dimension{Height: 480, Width: 320}, false, nil); err != nil {
		b.Fatal(err)
	}
	cached := rlv.Dimension{Height: 50, Width: 320}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.CheckDimensionDiscrepancy(cached, "row", i%64)
	}
}

func BenchmarkLayoutTypeForIndex(b *testing.B) {
	p := newSampleProvider()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.LayoutTypeForIndex(i)
	}
}
