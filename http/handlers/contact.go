package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"trainings-module/http/response"
	"trainings-module/logger"
	"trainings-module/services"
	"trainings-module/validation"
)

// ContactService handles the public contact form
type ContactService struct {
	busy atomic.Bool
}

func NewContactService() *ContactService {
	return &ContactService{}
}

// Submit validates the contact form and forwards the message to the site
// address. Overlapping submissions are rejected while one is in flight.
func (s *ContactService) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !s.busy.CompareAndSwap(false, true) {
		response.SendError(w, http.StatusTooManyRequests, "A submission is already being processed")
		return
	}
	defer s.busy.Store(false)

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	failures := validation.ValidateFields([]validation.Field{
		{Name: "name", Type: "text", Value: req.Name, Required: true},
		{Name: "email", Type: "email", Value: req.Email, Required: true},
		{Name: "phone", Type: "tel", Value: req.Phone},
		{Name: "message", Type: "text", Value: req.Message, Required: true},
	})
	if len(failures) > 0 {
		response.SendValidationFailures(w, failures)
		return
	}

	if err := services.SendContactMessage(req.Name, req.Email, req.Phone, req.Message); err != nil {
		logger.Error("Error sending contact message: %v", err)
		response.SendError(w, http.StatusInternalServerError, "Error sending message")
		return
	}

	response.SendSuccess(w, http.StatusOK, "Thank you for your message! We will get back to you soon.", nil)
}
