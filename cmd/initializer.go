package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"casafront/internal/api"
	"casafront/internal/cache"
	"casafront/internal/config"
	"casafront/internal/handlers"
	"casafront/internal/session"
	"casafront/internal/stores"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	session  *session.Manager

	publicationStore *stores.PublicationsStore
	adminStore       *stores.AdminPublicationsStore
	favoritesStore   *stores.FavoritesStore
	reportsStore     *stores.ReportsStore
	homeStore        *stores.HomeStore
	profileStore     *stores.ProfileStore

	publicationHandler *handlers.PublicationHandler
	adminHandler       *handlers.AdminHandler
	favoritesHandler   *handlers.FavoritesHandler
	reportsHandler     *handlers.ReportsHandler
	homeHandler        *handlers.HomeHandler
	profileHandler     *handlers.ProfileHandler
	sessionHandler     *handlers.SessionHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	sess := session.NewManager()
	sess.OnLogout(func() {
		infoLog.Printf("session torn down")
	})

	httpClient := &http.Client{Timeout: cfg.Backend.RequestTimeout}
	apiClient := api.NewClient(httpClient, cfg.Backend.BaseURL, sess)

	homeCache := cache.NewHomeCache(rdb, cfg.Redis.HomeTTL)

	app := &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		cfg:              cfg,
		session:          sess,
		publicationStore: stores.NewPublicationsStore(apiClient),
		adminStore:       stores.NewAdminPublicationsStore(apiClient, cfg.Pages.AdminSize),
		favoritesStore:   stores.NewFavoritesStore(apiClient, sess, cfg.Pages.FavoritesSize),
		reportsStore:     stores.NewReportsStore(apiClient, cfg.Pages.ReportsSize),
		homeStore:        stores.NewHomeStore(apiClient, homeCache),
		profileStore:     stores.NewProfileStore(apiClient),
	}

	app.publicationHandler = &handlers.PublicationHandler{Store: app.publicationStore, ErrorLog: errorLog}
	app.adminHandler = &handlers.AdminHandler{Store: app.adminStore, ErrorLog: errorLog}
	app.favoritesHandler = &handlers.FavoritesHandler{Store: app.favoritesStore, Home: app.homeStore, ErrorLog: errorLog}
	app.reportsHandler = &handlers.ReportsHandler{Store: app.reportsStore, ErrorLog: errorLog}
	app.homeHandler = &handlers.HomeHandler{Store: app.homeStore, Favorites: app.favoritesStore, Session: sess, ErrorLog: errorLog}
	app.profileHandler = &handlers.ProfileHandler{Store: app.profileStore, ErrorLog: errorLog}
	app.sessionHandler = &handlers.SessionHandler{Session: sess, Home: app.homeStore, InfoLog: infoLog}

	return app
}
