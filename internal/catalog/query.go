package catalog

import (
	"net/url"
	"slices"
	"strings"

	"github.com/erazemk/garagesale/internal/model"
)

// Query parameter names.
const (
	ParamStatus     = "status"
	ParamCondition  = "condition"
	ParamSort       = "sort"
	ParamCategories = "categories"
)

// EncodeQuery serializes the non-default parts of sel into a query string
// without the leading "?". The all-default selection encodes to "".
// Parameters are always emitted in the same order so equal selections
// produce identical strings.
func EncodeQuery(sel model.Selection) string {
	var parts []string
	if sel.Status != "" && sel.Status != model.AllFilter {
		parts = append(parts, ParamStatus+"="+escape(sel.Status))
	}
	if sel.Condition != "" && sel.Condition != model.AllFilter {
		parts = append(parts, ParamCondition+"="+escape(sel.Condition))
	}
	if sel.Sort != "" && sel.Sort != model.DefaultSort {
		parts = append(parts, ParamSort+"="+escape(string(sel.Sort)))
	}
	if sel.RestrictsCategory() {
		labels := make([]string, len(sel.Categories))
		for i, c := range sel.Categories {
			labels[i] = escape(c)
		}
		parts = append(parts, ParamCategories+"="+strings.Join(labels, ","))
	}
	return strings.Join(parts, "&")
}

// DecodeQuery builds a selection from a query string, with or without the
// leading "?". Missing parameters take their defaults and unknown parameters
// are ignored. When a parameter repeats, the first occurrence wins.
func DecodeQuery(raw string) model.Selection {
	sel := model.DefaultSelection()
	seen := make(map[string]bool)

	for _, pair := range strings.Split(strings.TrimPrefix(raw, "?"), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if seen[key] {
			continue
		}
		seen[key] = true

		switch key {
		case ParamStatus:
			if v := unescape(value); v != "" {
				sel.Status = v
			}
		case ParamCondition:
			if v := unescape(value); v != "" {
				sel.Condition = v
			}
		case ParamSort:
			sel.Sort = model.ParseSortOption(unescape(value))
		case ParamCategories:
			sel.Categories = decodeCategories(value)
		}
	}
	return sel
}

// decodeCategories splits before unescaping, so an encoded comma inside a
// label survives.
func decodeCategories(value string) []string {
	var labels []string
	for _, token := range strings.Split(value, ",") {
		label := unescape(token)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		if label == model.AllFilter {
			return []string{model.AllFilter}
		}
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return []string{model.AllFilter}
	}
	return labels
}

// escape percent-encodes everything but unreserved characters, with spaces as
// %20. Unlike encodeURIComponent it also escapes !'()*.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// unescape decodes a percent-encoded token, returning it unchanged when malformed.
func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return v
}
