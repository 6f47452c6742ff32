package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"trainings-module/http/response"
	"trainings-module/logger"
	"trainings-module/models"
	"trainings-module/services"
	"trainings-module/store"
	"trainings-module/validation"
)

// EnrollmentService handles public enrollments. Free trainings confirm
// immediately; paid trainings create a gateway order first and confirm on
// signature verification.
type EnrollmentService struct {
	trainings   *store.Store
	enrollments *store.EnrollmentStore
	// busy rejects overlapping submissions so a double click can not
	// enroll twice.
	busy atomic.Bool
}

func NewEnrollmentService(trainings *store.Store, enrollments *store.EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{trainings: trainings, enrollments: enrollments}
}

// Enroll validates the enrollment form and either confirms (free training)
// or returns a payment order (paid training).
func (s *EnrollmentService) Enroll(w http.ResponseWriter, r *http.Request) {
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
		TrainingID int    `json:"training_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	failures := validation.ValidateFields([]validation.Field{
		{Name: "name", Type: "text", Value: req.Name, Required: true},
		{Name: "email", Type: "email", Value: req.Email, Required: true},
		{Name: "phone", Type: "tel", Value: req.Phone, Required: true},
	})
	if len(failures) > 0 {
		response.SendValidationFailures(w, failures)
		return
	}

	training, err := s.trainings.Get(req.TrainingID)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), "Training not found")
		return
	}

	enrollment := models.Enrollment{
		TrainingID: training.ID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Amount:     training.Price,
	}

	// Free trainings skip the gateway entirely
	if training.Price == 0 {
		enrollment.Status = models.EnrollmentConfirmed
		saved, err := s.enrollments.Add(enrollment)
		if err != nil {
			response.SendError(w, response.StatusFromError(err), err.Error())
			return
		}

		services.PublishEnrollmentEvent("enrollment.confirmed", saved)
		go func() {
			if err := services.SendEnrollmentConfirmation(saved, training); err != nil {
				logger.Warn("Could not send enrollment confirmation for %d: %v", saved.ID, err)
			}
		}()

		response.SendSuccess(w, http.StatusCreated, "Enrollment confirmed!", saved)
		return
	}

	order, err := services.CreatePaymentOrder(training.ID, training.Price)
	if err != nil {
		logger.Error("Error creating payment order for training %d: %v", training.ID, err)
		response.SendError(w, http.StatusInternalServerError, "Error initiating payment")
		return
	}

	enrollment.Status = models.EnrollmentPending
	enrollment.OrderID = order.OrderID
	saved, err := s.enrollments.Add(enrollment)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishEnrollmentEvent("enrollment.initiated", saved)

	response.SendSuccess(w, http.StatusCreated, "Payment required to complete enrollment", map[string]interface{}{
		"enrollment_id": saved.ID,
		"order":         order,
	})
}

// VerifyPayment confirms a pending paid enrollment after checking the
// gateway signature.
func (s *EnrollmentService) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		response.SendError(w, http.StatusBadRequest, "order_id, payment_id and signature are required")
		return
	}

	if !services.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
		response.SendError(w, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	confirmed, err := s.enrollments.MarkPaid(req.OrderID, req.PaymentID)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishEnrollmentEvent("enrollment.confirmed", confirmed)

	if training, err := s.trainings.Get(confirmed.TrainingID); err == nil {
		go func() {
			if err := services.SendEnrollmentConfirmation(confirmed, training); err != nil {
				logger.Warn("Could not send enrollment confirmation for %d: %v", confirmed.ID, err)
			}
		}()
	}

	response.SendSuccess(w, http.StatusOK, "Enrollment confirmed!", confirmed)
}
