package model

import (
	"encoding/json"
	"testing"
)

func TestBestImageURL(t *testing.T) {
	tests := []struct {
		name   string
		images []ImageDescriptor
		want   string
	}{
		{"no images", nil, PlaceholderImageURL},
		{"original only", []ImageDescriptor{{Src: "/a.jpg"}}, "/a.jpg"},
		{"medium preferred", []ImageDescriptor{{Src: "/a.jpg", Med: "/a-med.webp"}}, "/a-med.webp"},
		{"first image wins", []ImageDescriptor{{Src: "/a.jpg"}, {Src: "/b.jpg", Med: "/b-med.webp"}}, "/a.jpg"},
		{"empty descriptor", []ImageDescriptor{{}}, PlaceholderImageURL},
	}

	for _, tt := range tests {
		if got := BestImageURL(tt.images); got != tt.want {
			t.Errorf("%s: BestImageURL() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"New", ConditionNew},
		{"like new", ConditionLikeNew},
		{" Fair ", ConditionFair},
		{"POOR", ConditionPoor},
		// Blank and unknown default to Good.
		{"", ConditionGood},
		{"mint", ConditionGood},
	}

	for _, tt := range tests {
		if got := ParseCondition(tt.raw); got != tt.expected {
			t.Errorf("ParseCondition(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if got := ParseStatus(""); got != StatusAvailable {
		t.Errorf("ParseStatus(\"\") = %q, want %q", got, StatusAvailable)
	}
	if got := ParseStatus(" Reserved "); got != "Reserved" {
		t.Errorf("ParseStatus kept unknown status as %q", got)
	}
}

func TestDimensionsJSON(t *testing.T) {
	tests := []struct {
		dims Dimensions
		json string
	}{
		{Dimensions{Raw: "large"}, `"large"`},
		{Dimensions{Width: Float(24), Height: Float(36), Depth: Float(12), Unit: "in"}, `{"width":24,"height":36,"depth":12,"unit":"in"}`},
		{Dimensions{Width: Float(1.5)}, `{"width":1.5}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.dims)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(data) != tt.json {
			t.Errorf("Marshal(%+v) = %s, want %s", tt.dims, data, tt.json)
		}

		var back Dimensions
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if back.String() != tt.dims.String() {
			t.Errorf("round trip of %s: got %q, want %q", data, back.String(), tt.dims.String())
		}
	}
}

func TestDimensionsString(t *testing.T) {
	d := &Dimensions{Width: Float(24), Height: Float(36), Depth: Float(12), Unit: "in"}
	if got := d.String(); got != "24 × 36 × 12 in" {
		t.Errorf("String() = %q", got)
	}
	var nilDims *Dimensions
	if got := nilDims.String(); got != "" {
		t.Errorf("nil String() = %q", got)
	}
}
