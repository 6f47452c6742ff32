package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"trainings-module/config"
	"trainings-module/http/response"
	"trainings-module/storage"
	"trainings-module/utils"
)

// AuthService maintains the admin logged-in marker. The credential check is
// a plain yes/no gate against configured values; everything beyond that is
// out of scope here.
type AuthService struct {
	slot storage.Slot
}

func NewAuthService(slot storage.Slot) *AuthService {
	return &AuthService{slot: slot}
}

// Login checks the configured admin credentials and writes the logged-in
// marker slot.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if config.AppConfig.AdminPass == "" {
		response.SendError(w, http.StatusInternalServerError, "Admin login is not configured")
		return
	}
	if req.Username != config.AppConfig.AdminUser || req.Password != config.AppConfig.AdminPass {
		response.SendError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	marker, _ := json.Marshal(map[string]string{
		"logged_in_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err := s.slot.Write(utils.AdminLoginSlot, marker); err != nil {
		response.SendError(w, http.StatusInternalServerError, "Error saving admin session")
		return
	}

	response.SendSuccess(w, http.StatusOK, "Logged in", nil)
}

// Logout clears the logged-in marker slot.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := s.slot.Delete(utils.AdminLoginSlot); err != nil {
		response.SendError(w, http.StatusInternalServerError, "Error clearing admin session")
		return
	}

	response.SendSuccess(w, http.StatusOK, "Logged out", nil)
}
