package models

import (
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// BundleVersion identifies the bundle wire format.
//
// Msgpack over JSON here because doc bodies dominate the payload and
// msgpack encodes them roughly 30% smaller, while the bundle is
// machine-to-machine only - nobody reads it by hand.
const BundleVersion = "1"

// SiteBundle is the portable snapshot of the site: every live doc plus
// the hero settings, suitable for backup or moving between instances.
type SiteBundle struct {
	Version    string       `msgpack:"version"`
	ExportedAt time.Time    `msgpack:"exported_at"`
	Hero       HeroSettings `msgpack:"hero"`
	Docs       []DocOutput  `msgpack:"docs"`
}

// EncodeBundle serializes a bundle to msgpack bytes.
func EncodeBundle(bundle *SiteBundle) ([]byte, error) {
	data, err := msgpack.Marshal(bundle)
	if err != nil {
		return nil, serr.Wrap(err, "failed to encode bundle")
	}
	return data, nil
}

// DecodeBundle deserializes msgpack bytes into a bundle and checks the
// format version.
func DecodeBundle(data []byte) (*SiteBundle, error) {
	bundle := &SiteBundle{}
	if err := msgpack.Unmarshal(data, bundle); err != nil {
		return nil, serr.Wrap(err, "failed to decode bundle")
	}
	if bundle.Version != BundleVersion {
		return nil, serr.New("unsupported bundle version: " + bundle.Version)
	}
	return bundle, nil
}

// ExportBundle snapshots the current site into an encoded bundle.
// Drafts are included - a bundle is a backup, not a publication.
func ExportBundle() ([]byte, error) {
	hero, err := GetHeroSettings()
	if err != nil {
		return nil, err
	}

	docs, err := ListDocs(false, 0, 0)
	if err != nil {
		return nil, err
	}

	bundle := &SiteBundle{
		Version:    BundleVersion,
		ExportedAt: time.Now(),
		Hero:       *hero,
	}
	for i := range docs {
		bundle.Docs = append(bundle.Docs, docs[i].ToOutput())
	}

	return EncodeBundle(bundle)
}

// ImportBundle applies a bundle to the site: hero settings are replaced
// and docs are upserted by slug. Returns the number of docs imported.
func ImportBundle(data []byte) (int, error) {
	bundle, err := DecodeBundle(data)
	if err != nil {
		return 0, err
	}

	hero := bundle.Hero
	if err := hero.Save(); err != nil {
		return 0, serr.Wrap(err, "failed to import hero settings")
	}

	imported := 0
	for _, d := range bundle.Docs {
		input := DocInput{
			Slug:      d.Slug,
			Title:     d.Title,
			Summary:   d.Summary,
			Body:      d.Body,
			Published: d.Published,
		}

		existing, err := GetDocBySlug(d.Slug)
		if err != nil {
			return imported, err
		}

		if existing == nil {
			_, err = CreateDoc(input)
		} else {
			_, err = UpdateDoc(existing.GUID, input)
		}
		if err != nil {
			logger.LogErr(err, "failed to import doc", "slug", d.Slug)
			continue
		}
		imported++
	}

	return imported, nil
}
