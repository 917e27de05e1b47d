package provider

import (
	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/layoutmanager"
)

// Provider is the capability contract every layout provider satisfies.
type Provider interface {
	// NewLayoutManager builds a layout manager for the given render window.
	// cached, if non-nil, seeds the manager with previously computed
	// layouts so replacing a manager does not re-derive every item's size.
	// The grid specialization rejects horizontal flow with an
	// errors.KindUnsupported error; the base provider never fails.
	NewLayoutManager(renderWindow rlv.Dimension, horizontal bool, cached []rlv.Layout) (layoutmanager.LayoutManager, error)

	// LayoutTypeForIndex classifies an index into a view type. It must be
	// deterministic for a given index under a fixed configuration.
	LayoutTypeForIndex(index int) rlv.ViewType

	// CheckDimensionDiscrepancy reports whether dim no longer matches what
	// the provider would compute now for (t, index). True signals the
	// caller to invalidate and relayout that index.
	CheckDimensionDiscrepancy(dim rlv.Dimension, t rlv.ViewType, index int) bool
}

// TypeForIndexFunc classifies an index into a view type.
type TypeForIndexFunc func(index int) rlv.ViewType

// SetLayoutFunc writes the dimension for (type, index) into dim.
// Output-parameter style keeps the scroll hot path allocation-free.
type SetLayoutFunc func(t rlv.ViewType, dim *rlv.Dimension, index int)

// LayoutProvider is the default Provider, driven by two injected callbacks.
// It is stateless with respect to any specific index: every query is
// computable from the index and the callbacks alone.
type LayoutProvider struct {
	typeForIndex TypeForIndexFunc
	setLayout    SetLayoutFunc

	// scratch is reused across discrepancy checks. Not reentrant.
	scratch rlv.Dimension

	// lastManager is a non-owning reference to the most recently created
	// manager, kept only so freshly computed dimensions can be propagated
	// as max bounds. The manager's lifecycle belongs to its caller.
	lastManager layoutmanager.LayoutManager
}

var _ Provider = (*LayoutProvider)(nil)

// NewLayoutProvider creates a provider from a classification callback and a
// dimension callback. Both are required.
func NewLayoutProvider(typeForIndex TypeForIndexFunc, setLayout SetLayoutFunc) *LayoutProvider {
	return &LayoutProvider{
		typeForIndex: typeForIndex,
		setLayout:    setLayout,
	}
}

// LayoutTypeForIndex implements Provider by delegating to the injected
// classification callback. No caching, no validation.
func (p *LayoutProvider) LayoutTypeForIndex(index int) rlv.ViewType {
	return p.typeForIndex(index)
}

// SetComputedLayout writes the dimension for (t, index) into dim through the
// injected dimension callback.
func (p *LayoutProvider) SetComputedLayout(t rlv.ViewType, dim *rlv.Dimension, index int) {
	p.setLayout(t, dim, index)
}

// CheckDimensionDiscrepancy implements Provider. dim is the caller's cached
// value; the fresh value is recomputed into the provider's scratch buffer and
// the two are compared exactly, no tolerance.
//
// Every call propagates the fresh dimension to the last created layout
// manager as max bounds, including calls that report no discrepancy.
func (p *LayoutProvider) CheckDimensionDiscrepancy(dim rlv.Dimension, t rlv.ViewType, index int) bool {
	p.SetComputedLayout(t, &p.scratch, index)
	if p.lastManager != nil {
		p.lastManager.SetMaxBounds(&p.scratch)
	}
	return dim.Height != p.scratch.Height || dim.Width != p.scratch.Width
}

// NewLayoutManager implements Provider with a wrap/flow manager. Each call
// replaces the tracked last-manager reference.
func (p *LayoutProvider) NewLayoutManager(renderWindow rlv.Dimension, horizontal bool, cached []rlv.Layout) (layoutmanager.LayoutManager, error) {
	m := layoutmanager.NewWrapLayoutManager(p, renderWindow, horizontal, cached)
	p.lastManager = m
	return m, nil
}
