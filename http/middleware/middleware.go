package middleware

import (
	"net/http"

	"trainings-module/http/response"
	"trainings-module/storage"
	"trainings-module/utils"
)

// EnableCORS wraps a handler with permissive CORS headers and answers
// preflight requests.
func EnableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// RequireAdmin gates admin routes on the logged-in marker slot. The
// authentication itself lives in the auth handler; this only checks the
// yes/no marker, the way the admin pages redirect unauthenticated access.
func RequireAdmin(slot storage.Slot, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok, err := slot.Read(utils.AdminLoginSlot)
		if err != nil {
			response.SendError(w, http.StatusInternalServerError, "Error checking admin session")
			return
		}
		if !ok {
			response.SendError(w, http.StatusUnauthorized, "Admin login required")
			return
		}
		next(w, r)
	}
}
