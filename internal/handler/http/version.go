package http

import (
	"io"
	"net/http"
)

// getServerVersion answers with the bare version string so the client can
// show it without decoding.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
