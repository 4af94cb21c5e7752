package page

import (
	"sync"

	"github.com/yhoon3002/schedule-bot/internal/calendar"
	"github.com/yhoon3002/schedule-bot/internal/event"
)

// Grid is the page-side stand-in for the calendar widget: it holds the
// displayed events plus two sequence numbers the page polls to know
// when to re-render and when to drop its visual selection. A page that
// sees refresh_seq move re-reads events; one that sees selection_seq
// move clears its selection highlight.
type Grid struct {
	mu           sync.Mutex
	events       []event.Event
	refreshSeq   uint64
	selectionSeq uint64
	lastErr      string
}

var _ calendar.GridPort = &Grid{}

// GridSnapshot is one poll result.
type GridSnapshot struct {
	Events       []event.Event `json:"events"`
	RefreshSeq   uint64        `json:"refresh_seq"`
	SelectionSeq uint64        `json:"selection_seq"`
	Error        string        `json:"error,omitempty"`
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// SetEvents replaces the displayed events. A successful load clears
// any previously reported error.
func (g *Grid) SetEvents(events []event.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.events = append(make([]event.Event, 0, len(events)), events...)
	g.refreshSeq++
	g.lastErr = ""
}

// Clear empties the grid. Used when the connection drops.
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.events = nil
	g.refreshSeq++
	g.lastErr = ""
}

// ClearSelection tells the page to drop its selection highlight.
func (g *Grid) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.selectionSeq++
}

// ReportError records a load failure for the page to surface. The
// message stays until the next successful load or clear.
func (g *Grid) ReportError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.lastErr = err.Error()
	}
}

// Snapshot returns a copy of the current grid state. Events is never
// nil so the page always receives a JSON array.
func (g *Grid) Snapshot() GridSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	events := make([]event.Event, 0, len(g.events))
	events = append(events, g.events...)
	return GridSnapshot{
		Events:       events,
		RefreshSeq:   g.refreshSeq,
		SelectionSeq: g.selectionSeq,
		Error:        g.lastErr,
	}
}
