package wire

import (
	"secure-it/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSite(r chi.Router, siteHandler *adaptor.SiteHandler) {
	r.Route("/api/site", func(r chi.Router) {
		r.Get("/mode", siteHandler.GetMode)
		r.Put("/mode", siteHandler.SetMode)
		r.Post("/mode/toggle", siteHandler.ToggleMode)
		r.Get("/contact", siteHandler.Contact)
	})
}
