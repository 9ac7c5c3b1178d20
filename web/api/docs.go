package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"docsite/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// CreateDoc handles POST /api/v1/docs
// Creates a new doc from the JSON body and returns it. Editors only.
func CreateDoc(ctx rweb.Context) error {
	if ok, err := requireEditor(ctx); !ok {
		return err
	}

	var input models.DocInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	if input.Title == "" {
		return writeError(ctx, http.StatusBadRequest, "title is required")
	}

	slug := input.Slug
	if slug == "" {
		slug = models.Slugify(input.Title)
	}
	existing, err := models.GetDocBySlug(slug)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to check existing doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if existing != nil {
		return writeError(ctx, http.StatusConflict, "doc with this slug already exists")
	}

	doc, err := models.CreateDoc(input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to create doc")
	}

	logger.Info("Doc created", "guid", doc.GUID, "slug", doc.Slug)
	return writeSuccess(ctx, http.StatusCreated, doc.ToOutput())
}

// GetDoc handles GET /api/v1/docs/:guid
func GetDoc(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	doc, err := models.GetDocByGUID(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if doc == nil {
		return writeError(ctx, http.StatusNotFound, "doc not found")
	}

	return writeSuccess(ctx, http.StatusOK, doc.ToOutput())
}

// ListDocs handles GET /api/v1/docs
//
// Query parameters:
//   - limit: maximum number of results (default: no limit)
//   - offset: number of results to skip (default: 0)
//   - published: "true" to exclude drafts
func ListDocs(ctx rweb.Context) error {
	limit := 0
	offset := 0

	if limitStr := ctx.Request().QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			return writeError(ctx, http.StatusBadRequest, "invalid limit parameter")
		}
		limit = parsed
	}

	if offsetStr := ctx.Request().QueryParam("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			return writeError(ctx, http.StatusBadRequest, "invalid offset parameter")
		}
		offset = parsed
	}

	publishedOnly := ctx.Request().QueryParam("published") == "true"

	docs, err := models.ListDocs(publishedOnly, limit, offset)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list docs"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	outputs := make([]models.DocOutput, 0, len(docs))
	for i := range docs {
		outputs = append(outputs, docs[i].ToOutput())
	}

	return writeSuccess(ctx, http.StatusOK, outputs)
}

// UpdateDoc handles PUT /api/v1/docs/:guid. Editors only.
func UpdateDoc(ctx rweb.Context) error {
	if ok, err := requireEditor(ctx); !ok {
		return err
	}

	guid := ctx.Request().Param("guid")

	var input models.DocInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	if input.Title == "" {
		return writeError(ctx, http.StatusBadRequest, "title is required")
	}

	doc, err := models.UpdateDoc(guid, input)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to update doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to update doc")
	}
	if doc == nil {
		return writeError(ctx, http.StatusNotFound, "doc not found")
	}

	return writeSuccess(ctx, http.StatusOK, doc.ToOutput())
}

// DeleteDoc handles DELETE /api/v1/docs/:guid. Soft delete; editors only.
func DeleteDoc(ctx rweb.Context) error {
	if ok, err := requireEditor(ctx); !ok {
		return err
	}

	guid := ctx.Request().Param("guid")

	doc, err := models.GetDocByGUID(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if doc == nil {
		return writeError(ctx, http.StatusNotFound, "doc not found")
	}

	if err := models.DeleteDoc(guid); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to delete doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "failed to delete doc")
	}

	logger.Info("Doc deleted", "guid", guid)
	return writeSuccess(ctx, http.StatusOK, map[string]string{"guid": guid})
}

// ListRevisions handles GET /api/v1/docs/:guid/revisions
func ListRevisions(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	doc, err := models.GetDocByGUID(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if doc == nil {
		return writeError(ctx, http.StatusNotFound, "doc not found")
	}

	revs, err := models.ListRevisions(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list revisions"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}

	return writeSuccess(ctx, http.StatusOK, revs)
}

// DiffRevisions handles GET /api/v1/docs/:guid/revisions/diff?from=1&to=2
// Returns the highlighted HTML diff between two revisions.
func DiffRevisions(ctx rweb.Context) error {
	guid := ctx.Request().Param("guid")

	from, err := strconv.Atoi(ctx.Request().QueryParam("from"))
	if err != nil || from < 1 {
		return writeError(ctx, http.StatusBadRequest, "invalid from parameter")
	}
	to, err := strconv.Atoi(ctx.Request().QueryParam("to"))
	if err != nil || to < 1 {
		return writeError(ctx, http.StatusBadRequest, "invalid to parameter")
	}

	doc, err := models.GetDocByGUID(guid)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get doc"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if doc == nil {
		return writeError(ctx, http.StatusNotFound, "doc not found")
	}

	diffHTML, err := models.DiffRevisions(guid, from, to)
	if err != nil {
		return writeError(ctx, http.StatusNotFound, "revision not found")
	}

	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"doc_guid": guid,
		"from":     from,
		"to":       to,
		"diff":     diffHTML,
	})
}
