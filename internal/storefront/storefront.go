// Package storefront renders the catalog views for a terminal.
package storefront

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/erazemk/garagesale/internal/catalog"
	"github.com/erazemk/garagesale/internal/i18n"
	"github.com/erazemk/garagesale/internal/model"
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Sold     lipgloss.Style
	Border   lipgloss.Style
}

// NewStyles builds styles bound to r, so color output follows the destination writer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#2563eb")).
			Bold(true),
		Subtitle: r.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Italic(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1),
		Cell: r.NewStyle().
			Padding(0, 1),
		Sold: r.NewStyle().
			Foreground(lipgloss.Color("#dc2626")).
			Padding(0, 1),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#9ca3af")),
	}
}

// Renderer writes translated catalog views.
type Renderer struct {
	T      *i18n.Translator
	F      *i18n.Formatter
	Styles Styles
}

// NewRenderer returns a renderer whose styles are bound to w.
func NewRenderer(w io.Writer, t *i18n.Translator, f *i18n.Formatter) *Renderer {
	return &Renderer{T: t, F: f, Styles: NewStyles(lipgloss.NewRenderer(w))}
}

// Inactive writes the "sale is closed" notice with the sale dates.
func (r *Renderer) Inactive(w io.Writer, window catalog.SaleWindow) error {
	var b strings.Builder
	b.WriteString(r.Styles.Title.Render(r.T.T("inactive.title", nil)) + "\n\n")
	b.WriteString(r.T.T("inactive.message", nil) + "\n\n")
	fmt.Fprintf(&b, "%s: %s\n", r.T.T("inactive.saleStarts", nil), r.F.Date(window.Start))
	fmt.Fprintf(&b, "%s: %s\n\n", r.T.T("inactive.saleEnds", nil), r.F.Date(window.End))
	b.WriteString(r.Styles.Muted.Render(r.T.T("inactive.checkBack", nil)) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Catalog writes the category counts and the session's visible items.
func (r *Renderer) Catalog(w io.Writer, s *catalog.Session) error {
	var b strings.Builder
	b.WriteString(r.Styles.Title.Render(r.T.T("site.title", nil)) + "\n")
	b.WriteString(r.Styles.Subtitle.Render(r.T.T("site.subtitle", nil)) + "\n\n")

	labels, counts := s.Categories()
	parts := make([]string, 0, len(labels)+1)
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s (%d)", r.categoryLabel(label), counts[label]))
	}
	if n := counts[catalog.Uncategorized]; n > 0 {
		parts = append(parts, r.Styles.Muted.Render(fmt.Sprintf("%s (%d)", r.T.T("common.uncategorized", nil), n)))
	}
	fmt.Fprintf(&b, "%s: %s\n", r.T.T("filters.category.label", nil), strings.Join(parts, "  "))

	sel := s.Selection()
	fmt.Fprintf(&b, "%s: %s\n\n", r.T.T("filters.sort.label", nil), r.sortLabel(sel.Sort))

	view := s.View()
	if len(view) == 0 {
		b.WriteString(r.Styles.Muted.Render(r.T.T("common.noItems", nil)) + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(r.itemTable(view) + "\n")
	b.WriteString(r.Styles.Muted.Render(r.T.T("common.showing", map[string]any{
		"count": len(view),
		"total": counts[model.AllFilter],
	})) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) itemTable(items []model.Item) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{
			item.ID,
			item.Name,
			r.F.Price(item.Price),
			r.ConditionLabel(item.Condition),
			r.StatusLabel(item.Status),
			r.categoryLabel(item.Category),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.Styles.Border).
		Headers(
			r.T.T("item.id", nil),
			r.T.T("item.name", nil),
			r.T.T("item.price", nil),
			r.T.T("item.condition", nil),
			r.T.T("item.status", nil),
			r.T.T("filters.category.label", nil),
		).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.Styles.Header
			}
			if row >= 0 && row < len(items) && items[row].Status == model.StatusSold {
				return r.Styles.Sold
			}
			return r.Styles.Cell
		}).
		String()
}

// Item writes the detail view for one item.
func (r *Renderer) Item(w io.Writer, item model.Item) error {
	var b strings.Builder
	title := item.Name
	if item.Status == model.StatusSold {
		title += " " + r.Styles.Sold.UnsetPadding().Render(r.T.T("item.sold", nil))
	}
	b.WriteString(r.Styles.Title.Render(title) + "\n\n")

	field := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", r.T.T(key, nil), value)
		}
	}
	field("item.id", item.ID)
	field("item.price", r.F.Price(item.Price))
	field("item.condition", r.ConditionLabel(item.Condition))
	field("item.status", r.StatusLabel(item.Status))
	field("filters.category.label", item.Category)
	if item.Dimensions != nil {
		field("item.dimensions", item.Dimensions.String())
	} else {
		field("item.dimensions", item.DimensionsRaw)
	}
	field("item.timeOfUse", item.TimeOfUse)
	field("item.deliveryTime", item.DeliveryTime)
	field("item.description", item.Description)

	if len(item.ImagesMeta) > 0 {
		fmt.Fprintf(&b, "%s:\n", r.T.T("item.images", nil))
		for _, img := range item.ImagesMeta {
			fmt.Fprintf(&b, "  %s  %s\n", img.Src, r.Styles.Muted.Render(img.Alt))
		}
	} else {
		fmt.Fprintf(&b, "%s: %s\n", r.T.T("item.images", nil), item.ImageURL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Share writes the query string a visitor would share for the current view.
func (r *Renderer) Share(w io.Writer, query string) error {
	if query == "" {
		query = "(" + r.T.T("common.all", nil) + ")"
	} else {
		query = "?" + query
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", r.T.T("site.share", nil), query)
	return err
}

var conditionKeys = map[string]string{
	model.ConditionNew:     "filters.condition.new",
	model.ConditionLikeNew: "filters.condition.likeNew",
	model.ConditionGood:    "filters.condition.good",
	model.ConditionFair:    "filters.condition.fair",
	model.ConditionPoor:    "filters.condition.poor",
}

var statusKeys = map[string]string{
	model.StatusAvailable: "filters.status.available",
	model.StatusSold:      "filters.status.sold",
}

var sortKeys = map[model.SortOption]string{
	model.SortPriceLow:  "filters.sort.priceLowHigh",
	model.SortPriceHigh: "filters.sort.priceHighLow",
	model.SortNameAsc:   "filters.sort.nameAZ",
	model.SortNameDesc:  "filters.sort.nameZA",
}

// ConditionLabel translates a condition value. Unknown values are shown as is.
func (r *Renderer) ConditionLabel(condition string) string {
	if key, ok := conditionKeys[condition]; ok {
		return r.T.T(key, nil)
	}
	return condition
}

// StatusLabel translates a status value. Unknown values are shown as is.
func (r *Renderer) StatusLabel(status string) string {
	if key, ok := statusKeys[status]; ok {
		return r.T.T(key, nil)
	}
	return status
}

func (r *Renderer) sortLabel(opt model.SortOption) string {
	if key, ok := sortKeys[opt]; ok {
		return r.T.T(key, nil)
	}
	return string(opt)
}

func (r *Renderer) categoryLabel(label string) string {
	switch label {
	case model.AllFilter:
		return r.T.T("common.all", nil)
	case "":
		return "-"
	}
	return label
}
