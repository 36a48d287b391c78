package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
)

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	message := h.greetingUC.Greet(queryName(r))

	w.WriteHeader(http.StatusOK)
	if err := homeTemplate.Execute(w, struct{ Message string }{Message: message}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render home page", "error", err)
	}
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := notFoundTemplate.Execute(w, struct{ Path string }{Path: r.URL.Path}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render not found page", "error", err)
	}
}
