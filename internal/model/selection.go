package model

import "slices"

// AllFilter means "no restriction" for a filter dimension.
const AllFilter = "All"

// SortOption orders the derived catalog view.
type SortOption string

// Sort options.
const (
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
)

// DefaultSort is used when no sort option was chosen.
const DefaultSort = SortPriceLow

// SortOptions lists every supported sort option.
var SortOptions = []SortOption{SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc}

// ParseSortOption returns the matching sort option, or DefaultSort.
func ParseSortOption(raw string) SortOption {
	for _, s := range SortOptions {
		if string(s) == raw {
			return s
		}
	}
	return DefaultSort
}

// Selection is the active combination of filters and sort order.
type Selection struct {
	Status     string
	Condition  string
	Categories []string
	Sort       SortOption
}

// DefaultSelection returns a selection with no restrictions, sorted by price ascending.
func DefaultSelection() Selection {
	return Selection{
		Status:     AllFilter,
		Condition:  AllFilter,
		Categories: []string{AllFilter},
		Sort:       DefaultSort,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Selection) Clone() Selection {
	s.Categories = slices.Clone(s.Categories)
	return s
}

// Equal reports whether two selections are identical, including category order.
func (s Selection) Equal(o Selection) bool {
	return s.Status == o.Status &&
		s.Condition == o.Condition &&
		s.Sort == o.Sort &&
		slices.Equal(s.Categories, o.Categories)
}

// RestrictsCategory reports whether the category filter excludes anything.
func (s Selection) RestrictsCategory() bool {
	return len(s.Categories) > 0 && !slices.Contains(s.Categories, AllFilter)
}

// ToggleCategory returns a copy of s with label switched on or off.
// "All" and concrete labels are mutually exclusive, and the result is never
// empty: removing the last concrete label restores "All".
func (s Selection) ToggleCategory(label string, on bool) Selection {
	out := s.Clone()
	if label == AllFilter {
		if on || len(out.Categories) == 0 {
			out.Categories = []string{AllFilter}
		}
		return out
	}

	next := make([]string, 0, len(out.Categories)+1)
	for _, c := range out.Categories {
		if c == AllFilter || c == label {
			continue
		}
		next = append(next, c)
	}
	if on {
		next = append(next, label)
	}
	if len(next) == 0 {
		next = []string{AllFilter}
	}
	out.Categories = next
	return out
}
