// Package catalog derives the filtered, sorted catalog view from the item
// collection and keeps the active selection in sync with the page URL.
package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/erazemk/garagesale/internal/model"
)

// Uncategorized is the count bucket for items without a category.
const Uncategorized = "Uncategorized"

// Deriver filters and sorts items. The zero value compares names using English collation.
type Deriver struct {
	// Language selects the collation used by the name sorts.
	Language language.Tag
}

// Derive returns the items matching sel, in sel's sort order, using English collation.
func Derive(items []model.Item, sel model.Selection) []model.Item {
	return Deriver{}.Derive(items, sel)
}

// Derive returns the items matching sel, in sel's sort order. items is never modified.
// Hidden items are kept; dropping them is left to Visible.
func (d Deriver) Derive(items []model.Item, sel model.Selection) []model.Item {
	result := make([]model.Item, 0, len(items))
	restrictCategory := sel.RestrictsCategory()

	for _, item := range items {
		if sel.Status != model.AllFilter && sel.Status != "" && item.Status != sel.Status {
			continue
		}
		if sel.Condition != model.AllFilter && sel.Condition != "" && item.Condition != sel.Condition {
			continue
		}
		if restrictCategory && (item.Category == "" || !slices.Contains(sel.Categories, item.Category)) {
			continue
		}
		result = append(result, item)
	}

	switch sel.Sort {
	case model.SortPriceHigh:
		slices.SortStableFunc(result, func(a, b model.Item) int { return cmp.Compare(b.Price, a.Price) })
	case model.SortNameAsc:
		c := d.collator()
		slices.SortStableFunc(result, func(a, b model.Item) int { return c.CompareString(a.Name, b.Name) })
	case model.SortNameDesc:
		c := d.collator()
		slices.SortStableFunc(result, func(a, b model.Item) int { return c.CompareString(b.Name, a.Name) })
	default:
		slices.SortStableFunc(result, func(a, b model.Item) int { return cmp.Compare(a.Price, b.Price) })
	}

	return result
}

func (d Deriver) collator() *collate.Collator {
	tag := d.Language
	if tag == language.Und {
		tag = language.English
	}
	return collate.New(tag)
}

// Visible drops hidden items.
func Visible(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if !item.Hidden {
			out = append(out, item)
		}
	}
	return out
}

// Counts maps category labels to item counts.
type Counts map[string]int

// CountCategories tallies items per category over the full collection.
// Items without a category land in Uncategorized, and "All" holds the total.
func CountCategories(items []model.Item) Counts {
	counts := Counts{model.AllFilter: len(items)}
	for _, item := range items {
		key := item.Category
		if key == "" {
			key = Uncategorized
		}
		counts[key]++
	}
	return counts
}

// Labels returns "All" followed by the sorted distinct category labels.
// The Uncategorized bucket is not a selectable label.
func (c Counts) Labels() []string {
	labels := make([]string, 0, len(c))
	for k := range c {
		if k == model.AllFilter || k == Uncategorized {
			continue
		}
		labels = append(labels, k)
	}
	slices.Sort(labels)
	return append([]string{model.AllFilter}, labels...)
}
