package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// handleLoad соответствует загрузке страницы: состояние сбрасывается, список перезагружается.
func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	h.App.Load(r.Context())
	h.render(w, r, "load")
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "view")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, handlerName string) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", h.App.Snapshot()); err != nil {
		h.writeError(w, r, handlerName, http.StatusInternalServerError, "INTERNAL", "failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleViewJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(h.App.Snapshot())
}
