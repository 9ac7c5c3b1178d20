package api

import (
	"net/http"
	"time"

	"docsite/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// ExportBundle handles GET /api/v1/export
// Streams the full site (docs + hero settings) as a msgpack bundle.
func ExportBundle(ctx rweb.Context) error {
	data, err := models.ExportBundle()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to export bundle"), "export error")
		return writeError(ctx, http.StatusInternalServerError, "export failed")
	}

	filename := "docsite-bundle-" + time.Now().Format("20060102-150405") + ".msgpack"
	ctx.Response().SetHeader("Content-Disposition", "attachment; filename="+filename)
	ctx.Response().SetHeader("Content-Type", "application/msgpack")

	return ctx.Bytes(data)
}

// ImportBundle handles POST /api/v1/import. Editors only.
// The request body is a msgpack bundle produced by ExportBundle.
func ImportBundle(ctx rweb.Context) error {
	if ok, err := requireEditor(ctx); !ok {
		return err
	}

	body := ctx.Request().Body()
	if len(body) == 0 {
		return writeError(ctx, http.StatusBadRequest, "empty bundle")
	}

	count, err := models.ImportBundle(body)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to import bundle"), "import error")
		return writeError(ctx, http.StatusBadRequest, "import failed: "+err.Error())
	}

	logger.Info("Bundle imported", "docs", count)
	return writeSuccess(ctx, http.StatusOK, map[string]int{"imported": count})
}
