package handler

import "net/http"

// HandleHealthz reports liveness.
// GET /healthz
// Response: {"status":"ok","service":"tasknest"}
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "tasknest",
	})
}
