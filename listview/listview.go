package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	rlv "github.com/saggiyogesh/recyclerlistview"
	"github.com/saggiyogesh/recyclerlistview/layoutmanager"
	"github.com/saggiyogesh/recyclerlistview/provider"
	"github.com/saggiyogesh/recyclerlistview/recycle"
)

// rowCacheSize bounds the rendered-row memo. Rows evicted under scroll
// pressure are simply re-rendered on the next visit.
const rowCacheSize = 512

// RenderRowFunc renders the item at index into a string. view is the
// recycled instance attached to the row, width the row's layout width in
// cells. The result is padded/clipped to the row's layout box.
type RenderRowFunc func(index int, view any, width int) string

// Model is a virtualized list component. It is not a tea.Model itself; the
// host application forwards messages to Update and embeds View's output.
type Model struct {
	provider  provider.Provider
	manager   layoutmanager.LayoutManager
	recycler  *recycle.Recycler
	renderRow RenderRowFunc
	rowCache  *lru.Cache[int, string]

	// attached maps on-screen indices to their recycled view handles.
	attached map[int]recycle.Handle

	itemCount int
	window    rlv.Dimension
	scrollY   float64

	styles Styles
	err    error
}

// New creates a list over itemCount items. factory builds view instances per
// view type; renderRow draws one row. The model is inert until the first
// tea.WindowSizeMsg arrives.
func New(p provider.Provider, itemCount int, factory recycle.Factory, renderRow RenderRowFunc) *Model {
	cache, _ := lru.New[int, string](rowCacheSize)
	return &Model{
		provider:  p,
		itemCount: itemCount,
		recycler:  recycle.NewRecycler(factory),
		renderRow: renderRow,
		rowCache:  cache,
		attached:  make(map[int]recycle.Handle),
		styles:    DefaultStyles(),
	}
}

// SetStyles replaces the list chrome styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// Update handles scrolling keys and window sizing.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.ScrollBy(-1)
		case "down", "j":
			m.ScrollBy(1)
		case "pgup":
			m.ScrollBy(-m.window.Height)
		case "pgdown":
			m.ScrollBy(m.window.Height)
		case "home", "g":
			m.ScrollTo(0)
		case "end", "G":
			m.ScrollTo(m.maxScroll())
		}
	}
	return m, nil
}

// resize replaces the layout manager, seeding it with the previous manager's
// layouts so unchanged items keep their computed sizes.
func (m *Model) resize(width, height int) {
	// One column is reserved for the scrollbar.
	window := rlv.Dimension{Height: float64(height), Width: float64(width - 1)}
	if window.Width < 1 || window.Height < 1 {
		return
	}

	var cached []rlv.Layout
	if m.manager != nil {
		cached = m.manager.Layouts()
	}
	manager, err := m.provider.NewLayoutManager(window, false, cached)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.manager = manager
	m.window = window
	manager.RelayoutFromIndex(0, m.itemCount)

	// Widths may have changed; memoized rows are stale.
	m.rowCache.Purge()
	m.clampScroll()
	m.syncAttachments()
}

// SetItemCount informs the list of a data size change, relaying out from the
// first affected index.
func (m *Model) SetItemCount(count int) {
	if count < 0 || count == m.itemCount {
		return
	}
	from := min(count, m.itemCount)
	m.itemCount = count
	if m.manager != nil {
		m.manager.RelayoutFromIndex(from, count)
	}
	m.purgeFrom(from)
	m.clampScroll()
	m.syncAttachments()
}

// Invalidate re-checks the committed dimension for index against the
// provider and, on a discrepancy, relays out from that index and drops stale
// memoized rows. Reports whether a relayout happened.
func (m *Model) Invalidate(index int) bool {
	if m.manager == nil {
		return false
	}
	l, err := m.manager.LayoutForIndex(index)
	if err != nil {
		return false
	}
	t := m.provider.LayoutTypeForIndex(index)
	if !m.provider.CheckDimensionDiscrepancy(l.Dimension, t, index) {
		return false
	}
	m.manager.RelayoutFromIndex(index, m.itemCount)
	m.purgeFrom(index)
	m.clampScroll()
	m.syncAttachments()
	return true
}

// ScrollTo scrolls the viewport so offset is the first visible line.
func (m *Model) ScrollTo(offset float64) {
	m.scrollY = offset
	m.clampScroll()
	m.syncAttachments()
}

// ScrollBy scrolls by delta lines, positive is down.
func (m *Model) ScrollBy(delta float64) {
	m.ScrollTo(m.scrollY + delta)
}

// ScrollToIndex scrolls so the item at index is at the top of the viewport.
func (m *Model) ScrollToIndex(index int) error {
	if m.manager == nil {
		return nil
	}
	_, y, err := m.manager.OffsetForIndex(index)
	if err != nil {
		return err
	}
	m.ScrollTo(y)
	return nil
}

// ScrollOffset returns the current scroll position in lines.
func (m *Model) ScrollOffset() float64 {
	return m.scrollY
}

// Manager returns the current layout manager, nil before the first resize.
func (m *Model) Manager() layoutmanager.LayoutManager {
	return m.manager
}

// Stats returns recycler activity for diagnostics.
func (m *Model) Stats() recycle.Stats {
	return m.recycler.Stats()
}

// View renders the visible window.
func (m *Model) View() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if m.manager == nil || m.window.Height < 1 {
		return ""
	}

	first, last := m.manager.VisibleRange(m.scrollY, m.window.Height)
	if last < first {
		return ""
	}

	layouts := m.manager.Layouts()
	var bands []string
	for i := first; i <= last; {
		// Items sharing a Y coordinate form one visual band; grid rows
		// place several items side by side.
		y := layouts[i].Y
		var blocks []string
		j := i
		for ; j <= last && layouts[j].Y == y; j++ {
			blocks = append(blocks, m.renderBlock(j, layouts[j]))
		}
		bands = append(bands, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		i = j
	}

	lines := strings.Split(strings.Join(bands, "\n"), "\n")
	if skip := int(m.scrollY - layouts[first].Y); skip > 0 && skip < len(lines) {
		lines = lines[skip:]
	}
	if h := int(m.window.Height); len(lines) > h {
		lines = lines[:h]
	}

	return m.attachScrollbar(lines)
}

func (m *Model) renderBlock(index int, l rlv.Layout) string {
	if s, ok := m.rowCache.Get(index); ok {
		return s
	}
	view, _ := m.recycler.Get(m.attached[index])
	s := m.renderRow(index, view, int(l.Width))
	s = lipgloss.NewStyle().
		Width(int(l.Width)).
		Height(int(l.Height)).
		MaxWidth(int(l.Width)).
		MaxHeight(int(l.Height)).
		Render(s)
	m.rowCache.Add(index, s)
	return s
}

// attachScrollbar appends the scrollbar column to each viewport line.
func (m *Model) attachScrollbar(lines []string) string {
	h := int(m.window.Height)
	content := m.manager.ContentDimension().Height

	thumbSize, thumbPos := 0, 0
	if content > m.window.Height {
		thumbSize = max(1, int(m.window.Height*m.window.Height/content))
		if maxScroll := m.maxScroll(); maxScroll > 0 {
			thumbPos = int(float64(h-thumbSize) * m.scrollY / maxScroll)
		}
	}

	var b strings.Builder
	for i := 0; i < h; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(lipgloss.NewStyle().Width(int(m.window.Width)).MaxWidth(int(m.window.Width)).Render(line))
		if thumbSize > 0 && i >= thumbPos && i < thumbPos+thumbSize {
			b.WriteString(m.styles.ScrollThumb.Render("┃"))
		} else if thumbSize > 0 {
			b.WriteString(m.styles.ScrollTrack.Render("│"))
		} else {
			b.WriteString(" ")
		}
		if i < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) maxScroll() float64 {
	if m.manager == nil {
		return 0
	}
	ms := m.manager.ContentDimension().Height - m.window.Height
	if ms < 0 {
		return 0
	}
	return ms
}

func (m *Model) clampScroll() {
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	if ms := m.maxScroll(); m.scrollY > ms {
		m.scrollY = ms
	}
}

// syncAttachments releases recycled views for rows that left the viewport
// and acquires views for rows that entered it.
func (m *Model) syncAttachments() {
	if m.manager == nil {
		return
	}
	first, last := m.manager.VisibleRange(m.scrollY, m.window.Height)

	for index, h := range m.attached {
		// Memoized row strings are kept: they depend on index and width
		// only, so scrolling back avoids a re-render.
		if index < first || index > last || index >= m.itemCount {
			m.recycler.Release(h)
			delete(m.attached, index)
		}
	}
	for i := first; i <= last && i < m.itemCount; i++ {
		if _, ok := m.attached[i]; !ok {
			h, _ := m.recycler.Acquire(m.provider.LayoutTypeForIndex(i))
			m.attached[i] = h
		}
	}
}

func (m *Model) purgeFrom(index int) {
	for _, k := range m.rowCache.Keys() {
		if k >= index {
			m.rowCache.Remove(k)
		}
	}
}
