package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderImageURL is used as an item's image when no image was resolved.
const PlaceholderImageURL = "https://placehold.co/600x400?text=No+Image&bg=efefef&color=555"

// Item is a single catalog entry.
type Item struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ImageURL      string            `json:"imageUrl"`
	ImagesMeta    []ImageDescriptor `json:"imagesMeta,omitempty"`
	PrimarySizes  *ImageDescriptor  `json:"primarySizes,omitempty"`
	Hidden        bool              `json:"hidden"`
	DimensionsRaw string            `json:"dimensionsRaw,omitempty"`
	Dimensions    *Dimensions       `json:"dimensions,omitempty"`
	Category      string            `json:"category,omitempty"`
	Price         float64           `json:"price"`
	Condition     string            `json:"condition"`
	TimeOfUse     string            `json:"timeOfUse"`
	DeliveryTime  string            `json:"deliveryTime"`
	Status        string            `json:"status"`
	Description   string            `json:"description"`
}

// ImageDescriptor lists the URLs available for one image.
type ImageDescriptor struct {
	Src   string `json:"src"`
	Thumb string `json:"thumb,omitempty"`
	Med   string `json:"med,omitempty"`
	Alt   string `json:"alt,omitempty"`
}

// Item conditions.
const (
	ConditionNew     = "New"
	ConditionLikeNew = "Like New"
	ConditionGood    = "Good"
	ConditionFair    = "Fair"
	ConditionPoor    = "Poor"
)

// Conditions lists every condition from best to worst.
var Conditions = []string{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor}

// Item statuses. Status is an open string; these are the values the catalog knows about.
const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
)

// ParseCondition maps raw text onto a known condition, case-insensitively.
// Blank or unknown input yields ConditionGood.
func ParseCondition(raw string) string {
	s := strings.TrimSpace(raw)
	for _, c := range Conditions {
		if strings.EqualFold(s, c) {
			return c
		}
	}
	return ConditionGood
}

// ParseStatus returns the trimmed status, defaulting to StatusAvailable.
func ParseStatus(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return StatusAvailable
	}
	return s
}

// BestImageURL picks the URL a simple list view should show: the first image's
// medium variant, then its original, then the placeholder. It never returns "".
func BestImageURL(images []ImageDescriptor) string {
	if len(images) == 0 {
		return PlaceholderImageURL
	}
	if images[0].Med != "" {
		return images[0].Med
	}
	if images[0].Src != "" {
		return images[0].Src
	}
	return PlaceholderImageURL
}

// Dimensions holds either parsed measurements or, when nothing numeric could be
// found, the raw text it was parsed from.
type Dimensions struct {
	Raw    string   `json:"-"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// IsRaw reports whether d carries only unparsed text.
func (d *Dimensions) IsRaw() bool {
	return d.Width == nil && d.Height == nil && d.Depth == nil
}

// String formats the dimensions for display, e.g. "24 × 36 × 12 in".
func (d *Dimensions) String() string {
	if d == nil {
		return ""
	}
	if d.IsRaw() {
		return d.Raw
	}
	var parts []string
	for _, v := range []*float64{d.Width, d.Height, d.Depth} {
		if v != nil {
			parts = append(parts, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	s := strings.Join(parts, " × ")
	if d.Unit != "" {
		s += " " + d.Unit
	}
	return s
}

type dimensionsObject struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// MarshalJSON encodes raw dimensions as a string and parsed ones as an object.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	if d.IsRaw() {
		return json.Marshal(d.Raw)
	}
	return json.Marshal(dimensionsObject{Width: d.Width, Height: d.Height, Depth: d.Depth, Unit: d.Unit})
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (d *Dimensions) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*d = Dimensions{Raw: raw}
		return nil
	}
	var obj dimensionsObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding dimensions: %w", err)
	}
	*d = Dimensions{Width: obj.Width, Height: obj.Height, Depth: obj.Depth, Unit: obj.Unit}
	return nil
}

// Float returns a pointer to v, for building Dimensions literals.
func Float(v float64) *float64 {
	return &v
}
