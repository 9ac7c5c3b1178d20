package web

import (
	"net/http"
	"strconv"

	"docsite/models"
	"docsite/views/pages"
	"docsite/views/partials"
	"docsite/web/api"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server) {
	// Page routes - HTML responses

	s.Get("/", func(ctx rweb.Context) error {
		settings, err := models.GetHeroSettings()
		if err != nil {
			logger.LogErr(err, "failed to load hero settings")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		docs, err := models.ListDocs(true, 0, 0)
		if err != nil {
			logger.LogErr(err, "failed to list docs")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(pages.HomePage(settings, docs))
	})

	// /docs is the home page's doc list under its canonical path
	s.Get("/docs", func(ctx rweb.Context) error {
		docs, err := models.ListDocs(true, 0, 0)
		if err != nil {
			logger.LogErr(err, "failed to list docs")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		settings, err := models.GetHeroSettings()
		if err != nil {
			logger.LogErr(err, "failed to load hero settings")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(pages.HomePage(settings, docs))
	})

	s.Get("/docs/:slug", func(ctx rweb.Context) error {
		slug := ctx.Request().Param("slug")

		doc, err := models.GetDocBySlug(slug)
		if err != nil {
			logger.LogErr(err, "failed to get doc", "slug", slug)
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}
		if doc == nil || !doc.Published {
			ctx.SetStatus(http.StatusNotFound)
			return ctx.WriteHTML(pages.NotFoundPage())
		}

		html, err := pages.DocPage(doc)
		if err != nil {
			logger.LogErr(err, "failed to render doc", "slug", slug)
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(html)
	})

	// HTMX partials
	s.Get("/partials/search", func(ctx rweb.Context) error {
		query := ctx.Request().QueryParam("q")

		var docs []models.Doc
		if query != "" {
			var err error
			docs, err = models.SearchDocs(query)
			if err != nil {
				logger.LogErr(err, "search failed", "query", query)
			}
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(partials.RenderSearchResults(docs, query))
	})

	// Revision diff fragment, linked from the doc revision history
	s.Get("/partials/docs/:guid/diff", func(ctx rweb.Context) error {
		guid := ctx.Request().Param("guid")
		from, errA := strconv.Atoi(ctx.Request().QueryParam("from"))
		to, errB := strconv.Atoi(ctx.Request().QueryParam("to"))
		if errA != nil || errB != nil {
			ctx.SetStatus(http.StatusBadRequest)
			return ctx.WriteHTML("<p>from and to revision numbers are required</p>")
		}

		doc, err := models.GetDocByGUID(guid)
		if err != nil {
			logger.LogErr(err, "failed to get doc", "guid", guid)
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}
		if doc == nil {
			ctx.SetStatus(http.StatusNotFound)
			return ctx.WriteHTML(pages.NotFoundPage())
		}

		diffHTML, err := models.DiffRevisions(guid, from, to)
		if err != nil {
			logger.LogErr(err, "failed to diff revisions", "guid", guid)
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>500 - Internal Server Error</h1>")
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(partials.RenderRevisionDiff(doc, from, to, diffHTML))
	})

	// Health check endpoint
	s.Get("/health", api.HealthCheck)

	// API v1 routes - JSON responses
	s.Get("/api/v1/docs", api.ListDocs)
	s.Post("/api/v1/docs", api.CreateDoc)
	s.Get("/api/v1/docs/:guid", api.GetDoc)
	s.Put("/api/v1/docs/:guid", api.UpdateDoc)
	s.Delete("/api/v1/docs/:guid", api.DeleteDoc)

	s.Get("/api/v1/docs/:guid/revisions", api.ListRevisions)
	s.Get("/api/v1/docs/:guid/revisions/diff", api.DiffRevisions)

	s.Get("/api/v1/hero", api.GetHero)
	s.Put("/api/v1/hero", api.UpdateHero)

	s.Post("/api/v1/auth/register", api.Register)
	s.Post("/api/v1/auth/login", api.Login)

	s.Get("/api/v1/export", api.ExportBundle)
	s.Post("/api/v1/import", api.ImportBundle)
}
