// Package listview renders a virtualized list in the terminal.
//
// Model is a bubbletea-embeddable component that wires the layout core
// together: a provider classifies and sizes items, a layout manager packs
// them into a scrollable region, a recycler pools view instances by type and
// an LRU cache memoizes rendered rows. Only rows intersecting the viewport
// are rendered; scrolling over an unbounded data set stays cheap.
//
// The host application owns the bubbletea program loop and forwards messages:
//
//	lv := listview.New(p, itemCount, factory, renderRow)
//	// in the host Update:
//	lv, cmd := lv.Update(msg)
//	// in the host View:
//	s := lv.View()
package listview
