package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/model"
)

func (h *handler) handleAPIHello(w http.ResponseWriter, r *http.Request) {
	resp := &model.HelloResponse{
		Message:   h.greetingUC.Greet(queryName(r)),
		Timestamp: model.FormatTimestamp(h.now()),
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode hello response", "error", err)
	}
}
