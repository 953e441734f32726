package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-game-conf/models"
)

// route binds a method and a prefix-relative pattern to a handler.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// routeGroup is a set of routes mounted under one prefix.
type routeGroup struct {
	prefix string
	routes []route
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// Registered before any group so that mounted subrouters inherit them.
	router.NotFound(h.fallback)
	router.MethodNotAllowed(h.fallback)

	for _, group := range h.routeGroups() {
		mountGroup(router, group)
	}

	return router
}

// routeGroups returns the full route table in mount order: the config group
// first, then the feature groups in [models.FeatureGroups] order.
func (h *Handler) routeGroups() []routeGroup {
	groups := []routeGroup{h.configRoutes()}

	byGroup := make(map[models.FeatureGroup][]route)
	for _, feature := range h.services.FeatureService.Routes() {
		byGroup[feature.Group] = append(byGroup[feature.Group], route{
			method:  feature.Method,
			pattern: feature.Path,
			handler: h.feature(feature),
		})
	}

	for _, group := range models.FeatureGroups {
		if routes, ok := byGroup[group]; ok {
			groups = append(groups, routeGroup{prefix: group.Prefix(), routes: routes})
		}
	}

	return groups
}

func (h *Handler) configRoutes() routeGroup {
	return routeGroup{
		prefix: "/config/prod",
		routes: []route{
			{http.MethodGet, "/official/Android/version", h.version},
			{http.MethodGet, "/official/network_config", h.networkConfig},
			{http.MethodGet, "/official/remote_config", h.remoteConfig},
			{http.MethodGet, "/official/refresh_config", h.refreshConfig},
			{http.MethodGet, "/announce_meta/Android/announcement.meta.json", h.announcement},
			{http.MethodGet, "/announce_meta/Android/announcement.meta.jsons", h.announcement},
			{http.MethodGet, "/announce_meta/Android/preannouncement.meta.json", h.preAnnouncement},
		},
	}
}

func mountGroup(router chi.Router, group routeGroup) {
	register := func(r chi.Router) {
		for _, rt := range group.routes {
			r.Method(rt.method, rt.pattern, rt.handler)
		}
	}

	if group.prefix == "" {
		register(router)
		return
	}
	router.Route(group.prefix, register)
}
