package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireSession)
	adminMiddleware := standardMiddleware.Append(app.requireAdmin)

	mux := pat.New()

	// Session
	mux.Post("/session", standardMiddleware.ThenFunc(app.sessionHandler.SignIn))
	mux.Get("/session", standardMiddleware.ThenFunc(app.sessionHandler.GetSession))
	mux.Del("/session", standardMiddleware.ThenFunc(app.sessionHandler.SignOut))

	// Home feeds
	mux.Get("/home", standardMiddleware.ThenFunc(app.homeHandler.GetHome))
	mux.Post("/home/refresh", standardMiddleware.ThenFunc(app.homeHandler.RefreshHome))

	// Publications
	mux.Get("/publications/search", standardMiddleware.ThenFunc(app.publicationHandler.SearchPublications))
	mux.Get("/publications/:id", standardMiddleware.ThenFunc(app.publicationHandler.GetPublicationByID))
	mux.Get("/publications", standardMiddleware.ThenFunc(app.publicationHandler.GetPublications))
	mux.Put("/publications/:id", authMiddleware.ThenFunc(app.publicationHandler.UpdatePublication))
	mux.Post("/publications/:id/report", authMiddleware.ThenFunc(app.publicationHandler.ReportPublication))
	mux.Post("/publications/validate_step", authMiddleware.ThenFunc(app.publicationHandler.ValidateStep))

	// Favorites
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoritesHandler.GetFavorites))
	mux.Post("/favorites/toggle", authMiddleware.ThenFunc(app.favoritesHandler.ToggleFavorite))
	mux.Post("/favorites/toggle_optimistic", authMiddleware.ThenFunc(app.favoritesHandler.ToggleFavoriteOptimistic))

	// Public profiles
	mux.Get("/users/:id/profile", standardMiddleware.ThenFunc(app.profileHandler.GetPublicProfile))

	// Moderation panel
	mux.Get("/admin/publications", adminMiddleware.ThenFunc(app.adminHandler.GetPublications))
	mux.Put("/admin/publications/:id/status", adminMiddleware.ThenFunc(app.adminHandler.UpdateStatus))
	mux.Get("/admin/reports", adminMiddleware.ThenFunc(app.reportsHandler.GetReports))
	mux.Put("/admin/reports/:id/resolve", adminMiddleware.ThenFunc(app.reportsHandler.ResolveReport))

	return mux
}
