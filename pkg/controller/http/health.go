package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/model"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/types"
)

// handleHealth handles health check requests
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	status := &model.HealthStatus{
		Status:    model.HealthStatusHealthy,
		Service:   types.ServiceName,
		Timestamp: model.FormatTimestamp(now),
		Uptime:    types.Uptime(now),
		Version:   types.Version,
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(status); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
