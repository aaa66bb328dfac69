// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withTracing,
		h.withLogging,
		withGZip,
		h.withRequestTimeout,
	)

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Post("/api/auth/login", h.login)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/session", h.session)

		r.Route("/api/data/{folderType}", func(r chi.Router) {
			r.Get("/", h.getData)
			r.Delete("/", h.deleteData)

			r.Get("/{subfolder}", h.getData)
			r.With(h.verifyHashing).Put("/{subfolder}", h.putData)
			r.Delete("/{subfolder}", h.deleteData)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
