package models

import (
	"testing"
	"time"
)

func TestBundleRoundTrip(t *testing.T) {
	summary := "First steps"
	bundle := &SiteBundle{
		Version:    BundleVersion,
		ExportedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Hero: HeroSettings{
			Heading:      "Platform Docs",
			Subheading:   "Guides and reference",
			ShowGraphic:  true,
			ClassNames:   "homepage-hero",
			CustomStyles: `{"backgroundColor":"#123456"}`,
		},
		Docs: []DocOutput{
			{
				GUID:      "guid-1",
				Slug:      "getting-started",
				Title:     "Getting Started",
				Summary:   &summary,
				Body:      "# Getting Started\n\nWelcome.",
				Published: true,
			},
		},
	}

	data, err := EncodeBundle(bundle)
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}

	decoded, err := DecodeBundle(data)
	if err != nil {
		t.Fatalf("decoding failed: %v", err)
	}

	if decoded.Hero.Heading != bundle.Hero.Heading {
		t.Error("hero settings should survive the round trip")
	}
	if len(decoded.Docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(decoded.Docs))
	}
	if decoded.Docs[0].Slug != "getting-started" {
		t.Error("doc slug should survive the round trip")
	}
	if decoded.Docs[0].Summary == nil || *decoded.Docs[0].Summary != summary {
		t.Error("doc summary should survive the round trip")
	}
	if decoded.Docs[0].Body != bundle.Docs[0].Body {
		t.Error("doc body should survive the round trip")
	}
}

func TestDecodeBundleRejectsWrongVersion(t *testing.T) {
	bundle := &SiteBundle{Version: "99"}

	data, err := EncodeBundle(bundle)
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}

	if _, err := DecodeBundle(data); err == nil {
		t.Error("unknown bundle version should be rejected")
	}
}

func TestDecodeBundleRejectsGarbage(t *testing.T) {
	if _, err := DecodeBundle([]byte("not msgpack at all")); err == nil {
		t.Error("garbage bytes should be rejected")
	}
}
