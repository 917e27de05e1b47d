// Package recyclerlistview provides the layout assignment core of a
// virtualized list/grid rendering system.
//
// Given an item index, the library decides which reusable view template
// renders it, what rectangular footprint that rendering occupies, and whether
// a previously computed footprint has gone stale and must trigger a relayout.
// A virtualization engine built on top of it can recycle a fixed pool of view
// instances across an effectively unbounded data set without re-measuring
// already rendered content on every scroll frame.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	recyclerlistview/    Root package with Dimension, Layout and ViewType
//	├── provider/        Layout providers: index -> type -> dimension, discrepancy checks
//	├── layoutmanager/   Wrap/flow and grid layout managers (absolute positions)
//	├── recycle/         Type-keyed recycler of view instances
//	├── listview/        bubbletea model for rendering virtualized lists
//	├── errors/          Structured error types for debugging
//	└── cmd/demo/        Terminal demo application
//
// # Quick Start
//
// Build a provider from two callbacks and hand it to a layout manager:
//
//	p := provider.NewLayoutProvider(
//	    func(index int) recyclerlistview.ViewType {
//	        if index%3 == 0 {
//	            return "header"
//	        }
//	        return "row"
//	    },
//	    func(t recyclerlistview.ViewType, dim *recyclerlistview.Dimension, index int) {
//	        dim.Width = 320
//	        if t == "header" {
//	            dim.Height = 100
//	        } else {
//	            dim.Height = 50
//	        }
//	    },
//	)
//
//	lm, err := p.NewLayoutManager(recyclerlistview.Dimension{Height: 480, Width: 320}, false, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lm.RelayoutFromIndex(0, itemCount)
//
// # Thread Safety
//
// The provider core is single-goroutine by design: discrepancy checks share
// one scratch buffer to stay allocation-free on the scroll hot path. See the
// provider package documentation for the exact reentrancy rules. The recycle
// package is safe for concurrent use.
package recyclerlistview
