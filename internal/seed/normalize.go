package seed

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/erazemk/garagesale/internal/model"
)

var (
	unitPattern   = regexp.MustCompile(`(?i)(cm|mm|inches|inch|in|ft|feet|m)\b`)
	numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

// ParseDimensions extracts up to three numbers (width, height, depth) and a
// unit from free text. Text without numbers is kept verbatim as Raw; blank
// text yields nil.
func ParseDimensions(raw string) *model.Dimensions {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	nums := numberPattern.FindAllString(s, 3)
	if len(nums) == 0 {
		return &model.Dimensions{Raw: s}
	}

	d := &model.Dimensions{}
	fields := []**float64{&d.Width, &d.Height, &d.Depth}
	for i, n := range nums {
		if v, err := strconv.ParseFloat(n, 64); err == nil {
			*fields[i] = model.Float(v)
		}
	}
	if m := unitPattern.FindStringSubmatch(s); m != nil {
		d.Unit = strings.ToLower(m[1])
	}
	return d
}

// categorySynonyms folds common spellings onto canonical category labels.
var categorySynonyms = map[string]string{
	"furniture":  "furniture",
	"furn":       "furniture",
	"sofa":       "furniture",
	"couch":      "furniture",
	"couches":    "furniture",
	"lighting":   "lighting",
	"lamp":       "lighting",
	"lamps":      "lighting",
	"books":      "books",
	"book":       "books",
	"toys":       "toys",
	"toy":        "toys",
	"tools":      "tools",
	"tool":       "tools",
	"kitchen":    "kitchen",
	"appliances": "kitchen",
}

// NormalizeCategory cleans a free-text category and maps known synonyms to
// their canonical label. Unknown values come back lowercased; blank input
// yields "".
func NormalizeCategory(raw string) string {
	s := strings.TrimRight(strings.TrimSpace(raw), ".,;:!?")
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	if s == "" {
		return ""
	}
	if c, ok := categorySynonyms[s]; ok {
		return c
	}
	if c, ok := categorySynonyms[strings.TrimSuffix(s, "s")]; ok {
		return c
	}
	return s
}

// ParsePrice reads a price leniently: anything that is not a finite,
// non-negative number becomes 0.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseHidden reports whether raw is "true", case-insensitively.
func ParseHidden(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "true"
}
