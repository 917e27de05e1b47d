package recyclerlistview

// ViewType identifies which reusable view template renders an index.
// Types are caller-defined tokens; the library never interprets them beyond
// equality.
type ViewType string

// Dimension is the rectangular footprint of a rendered item.
// Both fields are finite and non-negative once committed to a layout; scratch
// copies may transiently hold stale or zero values between computations.
type Dimension struct {
	Height float64
	Width  float64
}

// Layout is a committed per-index rectangle produced by a layout manager.
type Layout struct {
	Dimension
	X float64
	Y float64

	// Type the layout was computed for. Relayout recomputes the dimension
	// when the provider's classification no longer matches.
	Type ViewType

	// Overridden marks a layout whose dimension was forced externally
	// (e.g. from a real post-render measurement). Relayout keeps the forced
	// dimension as long as Type still matches.
	Overridden bool
}

// Rect reports the layout's bounding box as x, y, width, height.
func (l Layout) Rect() (x, y, w, h float64) {
	return l.X, l.Y, l.Width, l.Height
}
