package catalog

import "github.com/erazemk/garagesale/internal/model"

// Memo caches the derived view and the category counts. The view is recomputed
// only when the item collection or the selection changes; the counts only when
// the collection changes. A Memo is not safe for concurrent use.
type Memo struct {
	Deriver Deriver

	derived    []model.Item
	derivedFor collectionKey
	derivedSel model.Selection
	hasDerived bool

	counts    Counts
	countsFor collectionKey
	hasCounts bool

	computations int
}

// collectionKey identifies a slice by its backing array and length. Item
// collections are immutable after load, so identity implies equal contents.
type collectionKey struct {
	ptr *model.Item
	n   int
}

func keyOf(items []model.Item) collectionKey {
	if len(items) == 0 {
		return collectionKey{}
	}
	return collectionKey{ptr: &items[0], n: len(items)}
}

// Derive returns the memoized result of Deriver.Derive(items, sel).
// The returned slice is shared between calls and must not be modified.
func (m *Memo) Derive(items []model.Item, sel model.Selection) []model.Item {
	key := keyOf(items)
	if m.hasDerived && m.derivedFor == key && m.derivedSel.Equal(sel) {
		return m.derived
	}
	m.derived = m.Deriver.Derive(items, sel)
	m.derivedFor = key
	m.derivedSel = sel.Clone()
	m.hasDerived = true
	m.computations++
	return m.derived
}

// Counts returns the memoized category counts for items.
func (m *Memo) Counts(items []model.Item) Counts {
	key := keyOf(items)
	if m.hasCounts && m.countsFor == key {
		return m.counts
	}
	m.counts = CountCategories(items)
	m.countsFor = key
	m.hasCounts = true
	return m.counts
}

// Computations reports how many times the view has been derived.
func (m *Memo) Computations() int {
	return m.computations
}
