package models

import (
	"testing"
)

func TestHeroSettingsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		hs      HeroSettings
		wantErr bool
	}{
		{"valid minimal", HeroSettings{Heading: "H", Subheading: "S"}, false},
		{"valid with styles", HeroSettings{Heading: "H", Subheading: "S", CustomStyles: `{"color":"red"}`}, false},
		{"missing heading", HeroSettings{Subheading: "S"}, true},
		{"missing subheading", HeroSettings{Heading: "H"}, true},
		{"bad style json", HeroSettings{Heading: "H", Subheading: "S", CustomStyles: `nope`}, true},
		{"style values not strings", HeroSettings{Heading: "H", Subheading: "S", CustomStyles: `{"color":1}`}, true},
	}

	for _, tc := range testCases {
		err := tc.hs.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestHeroSettingsStyleMap(t *testing.T) {
	hs := HeroSettings{Heading: "H", Subheading: "S"}

	styles, err := hs.StyleMap()
	if err != nil {
		t.Fatalf("empty styles should parse: %v", err)
	}
	if len(styles) != 0 {
		t.Error("empty CustomStyles should yield an empty map")
	}

	hs.CustomStyles = `{"backgroundColor":"red","minHeight":"320px"}`
	styles, err = hs.StyleMap()
	if err != nil {
		t.Fatalf("styles should parse: %v", err)
	}
	if styles["backgroundColor"] != "red" || styles["minHeight"] != "320px" {
		t.Errorf("unexpected style map: %v", styles)
	}
}
