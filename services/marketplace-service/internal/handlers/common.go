package handlers

import (
	"net/http"
	"strings"

	"github.com/randevuapp/randevu/libs/httpx"
)

// Identity arrives as headers set by the gateway after token verification.
// Empty X-User-Id means the caller is anonymous.

func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}

func role(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Role"))
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := userID(r)
	if id == "" {
		httpx.Error(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return id, true
}
