package http

import (
	"net/http"
)

// getServerVersion reports the running application version as plain text.
// The value comes from config (APP_VERSION, defaulting to "dev"), not from
// the ldflags build info printed at startup.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
