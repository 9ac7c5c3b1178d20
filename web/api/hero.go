package api

import (
	"encoding/json"
	"net/http"

	"docsite/models"
	"docsite/views/components"
	"docsite/views/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// HeroUpdateInput is the JSON shape accepted by PUT /api/v1/hero.
// CustomStyles is the property-to-value override map, stored as JSON.
type HeroUpdateInput struct {
	Heading      string            `json:"heading"`
	Subheading   string            `json:"subheading"`
	ShowGraphic  bool              `json:"show_graphic"`
	ClassNames   string            `json:"class_names"`
	CustomStyles map[string]string `json:"custom_styles,omitempty"`
}

// heroResponse pairs the stored settings with a preview of the markup
// they produce, so admin UIs don't need their own renderer.
type heroResponse struct {
	Settings *models.HeroSettings `json:"settings"`
	Preview  string               `json:"preview"`
}

// GetHero handles GET /api/v1/hero
func GetHero(ctx rweb.Context) error {
	settings, err := models.GetHeroSettings()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get hero settings"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	return writeSuccess(ctx, http.StatusOK, heroResponse{
		Settings: settings,
		Preview:  components.RenderHero(pages.HeroConfigFrom(settings)),
	})
}

// UpdateHero handles PUT /api/v1/hero. Editors only.
// Returns 422 when the settings fail validation (empty heading or
// subheading) - invalid text never reaches the store.
func UpdateHero(ctx rweb.Context) error {
	if ok, err := requireEditor(ctx); !ok {
		return err
	}

	var input HeroUpdateInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	customStyles := ""
	if len(input.CustomStyles) > 0 {
		data, err := json.Marshal(input.CustomStyles)
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "invalid custom_styles")
		}
		customStyles = string(data)
	}

	settings := &models.HeroSettings{
		Heading:      input.Heading,
		Subheading:   input.Subheading,
		ShowGraphic:  input.ShowGraphic,
		ClassNames:   input.ClassNames,
		CustomStyles: customStyles,
	}

	if err := settings.Validate(); err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	if err := settings.Save(); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to save hero settings"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to save hero settings")
	}

	logger.Info("Hero settings updated", "heading", settings.Heading)
	return writeSuccess(ctx, http.StatusOK, heroResponse{
		Settings: settings,
		Preview:  components.RenderHero(pages.HeroConfigFrom(settings)),
	})
}
