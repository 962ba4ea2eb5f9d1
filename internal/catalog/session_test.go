package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/garagesale/internal/model"
)

func TestSessionReadsInitialSelection(t *testing.T) {
	loc := NewMemoryLocation("?status=Sold&categories=furniture")
	s := NewSession(testItems(), loc, Deriver{})

	assert.Equal(t, model.StatusSold, s.Selection().Status)
	assert.Equal(t, []string{"furniture"}, s.Selection().Categories)
	assert.Equal(t, []string{"6"}, ids(s.View()))
}

func TestSessionSyncsWithoutHistory(t *testing.T) {
	loc := NewMemoryLocation("")
	s := NewSession(testItems(), loc, Deriver{})

	s.SetStatus(model.StatusSold)
	assert.Equal(t, "status=Sold", loc.Query())

	s.ToggleCategory("furniture", true)
	s.SetSort(model.SortNameDesc)
	assert.Equal(t, "status=Sold&sort=name-desc&categories=furniture", loc.Query())

	s.SetStatus(model.AllFilter)
	s.SetSort(model.DefaultSort)
	s.ToggleCategory("furniture", false)
	assert.Equal(t, "", loc.Query())

	assert.Equal(t, 1, loc.Len(), "selection changes must not add history entries")
}

func TestSessionViewDropsHidden(t *testing.T) {
	s := NewSession(testItems(), NewMemoryLocation(""), Deriver{})
	view := ids(s.View())
	assert.Len(t, view, 6)
	assert.NotContains(t, view, "4")
}

func TestSessionMemoizesView(t *testing.T) {
	s := NewSession(testItems(), NewMemoryLocation(""), Deriver{})

	s.View()
	s.View()
	assert.Equal(t, 1, s.Computations())

	// Setting the same value leaves the selection equal.
	s.SetSort(model.DefaultSort)
	s.View()
	assert.Equal(t, 1, s.Computations())

	s.SetCondition(model.ConditionGood)
	s.View()
	assert.Equal(t, 2, s.Computations())

	// Counts never trigger a derivation.
	labels, counts := s.Categories()
	assert.Equal(t, []string{model.AllFilter, "furniture", "kitchen", "lighting", "toys"}, labels)
	assert.Equal(t, 7, counts[model.AllFilter])
	assert.Equal(t, 2, s.Computations())
}

func TestMemoRecomputesOnNewCollection(t *testing.T) {
	var m Memo
	items := testItems()
	sel := model.DefaultSelection()

	m.Derive(items, sel)
	m.Derive(items, sel.Clone())
	assert.Equal(t, 1, m.Computations())

	m.Derive(testItems(), sel)
	assert.Equal(t, 2, m.Computations())

	m.Derive(items[:3], sel)
	assert.Equal(t, 3, m.Computations())

	m.Derive(nil, sel)
	m.Derive([]model.Item{}, sel)
	assert.Equal(t, 4, m.Computations())
}

func TestSessionItemDetailUsesHistory(t *testing.T) {
	loc := NewMemoryLocation("status=Available")
	s := NewSession(testItems(), loc, Deriver{})

	require.True(t, s.OpenItem("3"))
	assert.Equal(t, "status=Available&item=3", loc.Query())
	assert.Equal(t, "3", s.OpenItemID())
	assert.Equal(t, 2, loc.Len())

	// Filter changes keep the item open.
	s.SetSort(model.SortNameAsc)
	assert.Equal(t, "status=Available&sort=name-asc&item=3", loc.Query())
	assert.Equal(t, 2, loc.Len())

	s.CloseItem()
	assert.Equal(t, "", s.OpenItemID())
	assert.Equal(t, 1, loc.Len())

	// Closing restores the selection of the entry the item was opened from.
	assert.Equal(t, "status=Available", loc.Query())
	assert.Equal(t, loc.Query(), EncodeQuery(s.Selection()))
	assert.Equal(t, model.DefaultSort, s.Selection().Sort)
	assert.Equal(t, model.StatusAvailable, s.Selection().Status)
}

func TestSessionOpenHiddenItem(t *testing.T) {
	loc := NewMemoryLocation("categories=furniture")
	s := NewSession(testItems(), loc, Deriver{})

	assert.False(t, s.OpenItem("4"))
	assert.Equal(t, "", s.OpenItemID())
	assert.Equal(t, "categories=furniture", loc.Query())
	assert.Equal(t, 1, loc.Len())
}

func TestSessionOpenUnknownItem(t *testing.T) {
	loc := NewMemoryLocation("")
	s := NewSession(testItems(), loc, Deriver{})

	assert.False(t, s.OpenItem("missing"))
	assert.Equal(t, 1, loc.Len())

	// Closing with nothing open is a no-op.
	s.CloseItem()
	assert.Equal(t, 1, loc.Len())
}

func TestSaleWindow(t *testing.T) {
	start := time.Date(2025, 10, 4, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 5, 17, 0, 0, 0, time.UTC)
	w := SaleWindow{Start: start, End: end}

	tests := []struct {
		name string
		now  time.Time
		want State
	}{
		{"before start", start.Add(-time.Nanosecond), StateInactive},
		{"at start", start, StateActive},
		{"during", start.Add(3 * time.Hour), StateActive},
		{"at end", end, StateActive},
		{"after end", end.Add(time.Nanosecond), StateInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.State(tt.now))
		})
	}
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "inactive", StateInactive.String())
}
