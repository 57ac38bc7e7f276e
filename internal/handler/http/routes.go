// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// routes that never touch the users table
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerForm)
		r.Get("/signout", h.signOut)
		r.Get("/version", h.getServerVersion)
		r.Get("/version/build", h.getBuildInfo)
	})

	// routes holding one store connection for the whole request
	router.Group(func(r chi.Router) {
		r.Use(h.withStoreConn)
		r.Post("/register", h.register)
		r.Post("/signin", h.signIn)
		r.Get("/profile", h.profile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
