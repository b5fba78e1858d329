package wire

import (
	"secure-it/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (tanpa auth middleware). Sessions are bearer tokens the
	// client holds; nothing here checks them.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/provider", authHandler.Provider)
		r.Post("/logout", authHandler.Logout)
	})
}
