// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages. Each one is parsed together with templates/layout.html.
const (
	viewHome     = "home.html"
	viewRegister = "register.html"
	viewProfile  = "profile.html"
)

type homeView struct {
	Error    string
	Username string
}

type registerView struct {
	Error     string
	Username  string
	FirstName string
	LastName  string
	Email     string
}

type profileView struct {
	models.Profile
}

type views struct {
	pages map[string]*template.Template
}

func newViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template)}

	for _, page := range []string{viewHome, viewRegister, viewProfile} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", page, err)
		}
		v.pages[page] = t
	}

	return v, nil
}

// render executes page into a buffer and writes it with status. Nothing is
// written to w when execution fails, so the caller's 500 is not mixed into a
// half-rendered page.
func (v *views) render(w http.ResponseWriter, r *http.Request, page string, status int, data any) {
	log := logger.FromRequest(r)

	t, ok := v.pages[page]
	if !ok {
		log.Err(ErrUnknownView).Str("func", "*views.render").Str("page", page).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*views.render").Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Str("func", "*views.render").Msg("error writing page")
	}
}
