package models

import (
	"encoding/json"
	"time"

	"github.com/rohanthewiz/serr"
)

// HeroSettings is the single persisted row backing the home page hero.
// CustomStyles is stored as a JSON object of style-property overrides;
// an empty string means no overrides. The render path itself never
// validates - Validate guards the write path so bad text can't be
// persisted in the first place.
type HeroSettings struct {
	ID           int64     `json:"id"`
	Heading      string    `json:"heading"`
	Subheading   string    `json:"subheading"`
	ShowGraphic  bool      `json:"show_graphic"`
	ClassNames   string    `json:"class_names"`
	CustomStyles string    `json:"custom_styles"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const CreateHeroSettingsTableSQL = `
CREATE TABLE IF NOT EXISTS hero_settings (
    id            BIGINT PRIMARY KEY,
    heading       VARCHAR NOT NULL,
    subheading    VARCHAR NOT NULL,
    show_graphic  BOOLEAN DEFAULT false,
    class_names   VARCHAR DEFAULT '',
    custom_styles VARCHAR DEFAULT '',
    updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// heroSettingsID pins the settings to one row.
const heroSettingsID = 1

// Defaults used to seed a fresh database.
const (
	DefaultHeroHeading    = "DocSite"
	DefaultHeroSubheading = "Guides and reference for the platform"
)

// Validate rejects settings that would render an empty hero.
func (hs *HeroSettings) Validate() error {
	if hs.Heading == "" {
		return serr.New("heading is required")
	}
	if hs.Subheading == "" {
		return serr.New("subheading is required")
	}
	if hs.CustomStyles != "" {
		if _, err := hs.StyleMap(); err != nil {
			return serr.Wrap(err, "custom_styles must be a JSON object of strings")
		}
	}
	return nil
}

// StyleMap parses CustomStyles into the map consumed by the hero
// component. An empty CustomStyles yields an empty map.
func (hs *HeroSettings) StyleMap() (map[string]string, error) {
	styles := map[string]string{}
	if hs.CustomStyles == "" {
		return styles, nil
	}
	if err := json.Unmarshal([]byte(hs.CustomStyles), &styles); err != nil {
		return nil, serr.Wrap(err, "failed to parse custom styles")
	}
	return styles, nil
}

// SeedHeroSettings inserts the default settings row if none exists.
// Called during database initialization.
func SeedHeroSettings() error {
	var count int
	row := QueryRowFromCache(`SELECT COUNT(*) FROM hero_settings WHERE id = ?`, heroSettingsID)
	if err := row.Scan(&count); err != nil {
		return serr.Wrap(err, "failed to check hero settings")
	}
	if count > 0 {
		return nil
	}

	err := WriteThrough(`
		INSERT INTO hero_settings (id, heading, subheading, show_graphic, class_names, custom_styles, updated_at)
		VALUES (?, ?, ?, false, '', '', ?)
	`, heroSettingsID, DefaultHeroHeading, DefaultHeroSubheading, time.Now())
	if err != nil {
		return serr.Wrap(err, "failed to seed hero settings")
	}
	return nil
}

// GetHeroSettings returns the current hero settings.
func GetHeroSettings() (*HeroSettings, error) {
	hs := &HeroSettings{}
	row := QueryRowFromCache(`
		SELECT id, heading, subheading, show_graphic, class_names, custom_styles, updated_at
		FROM hero_settings WHERE id = ?
	`, heroSettingsID)
	err := row.Scan(&hs.ID, &hs.Heading, &hs.Subheading, &hs.ShowGraphic,
		&hs.ClassNames, &hs.CustomStyles, &hs.UpdatedAt)
	if err != nil {
		return nil, serr.Wrap(err, "failed to get hero settings")
	}
	return hs, nil
}

// Save validates and persists the settings.
func (hs *HeroSettings) Save() error {
	if err := hs.Validate(); err != nil {
		return err
	}

	hs.ID = heroSettingsID
	hs.UpdatedAt = time.Now()

	err := WriteThrough(`
		UPDATE hero_settings
		SET heading = ?, subheading = ?, show_graphic = ?, class_names = ?, custom_styles = ?, updated_at = ?
		WHERE id = ?
	`, hs.Heading, hs.Subheading, hs.ShowGraphic, hs.ClassNames, hs.CustomStyles, hs.UpdatedAt, heroSettingsID)
	if err != nil {
		return serr.Wrap(err, "failed to save hero settings")
	}
	return nil
}
