package catalog

import (
	"strings"

	"github.com/erazemk/garagesale/internal/model"
)

// ParamItem names the query parameter carrying the open item's ID.
const ParamItem = "item"

// Location is the page's address bar and history.
type Location interface {
	// Query returns the current query string without the leading "?".
	Query() string
	// Replace swaps the current query string without adding a history entry.
	Replace(query string)
	// Push adds a history entry with the given query string.
	Push(query string)
	// Back returns to the previous history entry. It reports false when there is none.
	Back() bool
}

// MemoryLocation is an in-memory Location.
type MemoryLocation struct {
	entries []string
}

// NewMemoryLocation returns a location whose only history entry is query.
func NewMemoryLocation(query string) *MemoryLocation {
	return &MemoryLocation{entries: []string{strings.TrimPrefix(query, "?")}}
}

func (l *MemoryLocation) Query() string {
	return l.entries[len(l.entries)-1]
}

func (l *MemoryLocation) Replace(query string) {
	l.entries[len(l.entries)-1] = query
}

func (l *MemoryLocation) Push(query string) {
	l.entries = append(l.entries, query)
}

func (l *MemoryLocation) Back() bool {
	if len(l.entries) < 2 {
		return false
	}
	l.entries = l.entries[:len(l.entries)-1]
	return true
}

// Len returns the number of history entries.
func (l *MemoryLocation) Len() int {
	return len(l.entries)
}

// Session holds one visitor's selection over an item collection. The selection
// is read from the location when the session starts and written back, without
// new history entries, every time it changes.
type Session struct {
	items []model.Item
	loc   Location
	sel   model.Selection
	memo  Memo
}

// NewSession starts a session over items, initializing the selection from loc.
func NewSession(items []model.Item, loc Location, d Deriver) *Session {
	s := &Session{
		items: items,
		loc:   loc,
		sel:   DecodeQuery(loc.Query()),
	}
	s.memo.Deriver = d
	return s
}

// Selection returns a copy of the active selection.
func (s *Session) Selection() model.Selection {
	return s.sel.Clone()
}

// SetStatus sets the status filter.
func (s *Session) SetStatus(status string) {
	s.sel.Status = status
	s.sync()
}

// SetCondition sets the condition filter.
func (s *Session) SetCondition(condition string) {
	s.sel.Condition = condition
	s.sync()
}

// SetSort sets the sort order.
func (s *Session) SetSort(opt model.SortOption) {
	s.sel.Sort = opt
	s.sync()
}

// ToggleCategory switches a category label on or off.
func (s *Session) ToggleCategory(label string, on bool) {
	s.sel = s.sel.ToggleCategory(label, on)
	s.sync()
}

// View returns the visible items for the active selection.
func (s *Session) View() []model.Item {
	return Visible(s.memo.Derive(s.items, s.sel))
}

// Categories returns the selectable category labels and their counts over the
// whole collection.
func (s *Session) Categories() ([]string, Counts) {
	counts := s.memo.Counts(s.items)
	return counts.Labels(), counts
}

// Computations reports how many times the view has been derived.
func (s *Session) Computations() int {
	return s.memo.Computations()
}

// OpenItem shows an item's details in a new history entry, so going back closes it.
// It reports false when no item has that ID or the item is hidden.
func (s *Session) OpenItem(id string) bool {
	if item, ok := s.Item(id); !ok || item.Hidden {
		return false
	}
	q := EncodeQuery(s.sel)
	if q != "" {
		q += "&"
	}
	s.loc.Push(q + ParamItem + "=" + escape(id))
	return true
}

// CloseItem dismisses the open item by navigating back. The selection is
// reloaded from the restored entry.
func (s *Session) CloseItem() {
	if s.OpenItemID() != "" && s.loc.Back() {
		s.sel = DecodeQuery(s.loc.Query())
	}
}

// OpenItemID returns the ID of the item open in the current history entry, or "".
func (s *Session) OpenItemID() string {
	for _, pair := range strings.Split(s.loc.Query(), "&") {
		key, value, ok := strings.Cut(pair, "=")
		if ok && key == ParamItem {
			return unescape(value)
		}
	}
	return ""
}

// Item looks up an item by ID in the full collection.
func (s *Session) Item(id string) (model.Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.Item{}, false
}

// sync writes the selection to the location, keeping an open item open.
func (s *Session) sync() {
	q := EncodeQuery(s.sel)
	if id := s.OpenItemID(); id != "" {
		if q != "" {
			q += "&"
		}
		q += ParamItem + "=" + escape(id)
	}
	s.loc.Replace(q)
}
