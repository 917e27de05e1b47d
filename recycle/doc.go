// Package recycle pools view instances by view type for a virtualization
// engine.
//
// A Recycler hands out opaque view instances keyed by the layout provider's
// ViewType tokens. Released views go to a per-type idle list and are handed
// back on the next acquisition of the same type, so a fixed pool of views can
// serve an unbounded data set while scrolling.
//
// # Handles
//
// Views are addressed through integer handles; handle 0 is reserved and
// always invalid:
//
//	r := recycle.NewRecycler(func(t recyclerlistview.ViewType) any {
//	    return newRowWidget(t)
//	})
//
//	h, view := r.Acquire("row")   // cold: built by the factory
//	r.Release(h)                  // back to the "row" idle list
//	h2, view2 := r.Acquire("row") // warm: same instance, view2 == view
//
// Views implementing Resetter are reset when released, before they become
// eligible for reuse.
//
// Unlike the single-goroutine provider core, a Recycler is safe for
// concurrent use.
package recycle
