package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"trainings-module/http/response"
	"trainings-module/listing"
	"trainings-module/logger"
	"trainings-module/models"
	"trainings-module/services"
	"trainings-module/store"
	"trainings-module/utils"
	"trainings-module/validation"
)

// TrainingService encapsulates the admin training management operations
type TrainingService struct {
	store *store.Store
}

func NewTrainingService(s *store.Store) *TrainingService {
	return &TrainingService{store: s}
}

// List serves the admin table: search, category/status filters, page.
func (s *TrainingService) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	records, err := s.store.All()
	if err != nil {
		response.SendError(w, response.StatusFromError(err), "Error loading trainings")
		return
	}

	criteria := parseAdminCriteria(r)
	state := listing.NewViewState(listing.AdminView).WithCriteria(criteria)

	page, err := utils.ParsePage(r)
	if err != nil {
		response.SendError(w, http.StatusBadRequest, err.Error())
		return
	}
	if page != 1 {
		if state, err = state.GoToPage(records, page); err != nil {
			response.SendError(w, response.StatusFromError(err), fmt.Sprintf("Page %d is out of range", page))
			return
		}
	}

	result, err := listing.Apply(records, state)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	response.SendSuccess(w, http.StatusOK, fmt.Sprintf("Retrieved %d trainings", result.TotalCount), map[string]interface{}{
		"trainings":   utils.ConvertTrainingsToResponse(result.Page),
		"total_count": result.TotalCount,
		"page_index":  result.PageIndex,
		"page_count":  result.PageCount,
	})
}

// Create adds a new training (admin endpoint)
func (s *TrainingService) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input models.TrainingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if failures := validateTrainingForm(input); len(failures) > 0 {
		response.SendValidationFailures(w, failures)
		return
	}

	created, err := s.store.Add(input)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishTrainingEvent("training.created", created)

	response.SendSuccess(w, http.StatusCreated, "Training added successfully!", created.ToResponse())
}

// Update edits an existing training (admin endpoint)
func (s *TrainingService) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req struct {
		ID int `json:"id"`
		models.TrainingInput
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ID == 0 {
		response.SendError(w, http.StatusBadRequest, "Training ID is required")
		return
	}

	if failures := validateTrainingForm(req.TrainingInput); len(failures) > 0 {
		response.SendValidationFailures(w, failures)
		return
	}

	updated, err := s.store.Update(req.ID, req.TrainingInput)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishTrainingEvent("training.updated", updated)

	response.SendSuccess(w, http.StatusOK, "Training updated successfully!", updated.ToResponse())
}

// Delete removes a training permanently (admin endpoint)
func (s *TrainingService) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := utils.ParseID(r)
	if err != nil {
		response.SendError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := s.store.Get(id)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	if err := s.store.Remove(id); err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishTrainingEvent("training.deleted", deleted)

	response.SendSuccess(w, http.StatusOK, "Training deleted successfully!", map[string]interface{}{
		"training_id": id,
	})
}

// Approve moves a pending training to active (admin endpoint)
func (s *TrainingService) Approve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := utils.ParseID(r)
	if err != nil {
		response.SendError(w, http.StatusBadRequest, err.Error())
		return
	}

	approved, err := s.store.Approve(id)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	services.PublishTrainingEvent("training.approved", approved)

	// Approval notice is non-critical
	go func() {
		if err := services.SendApprovalNotice(approved); err != nil {
			logger.Warn("Could not send approval notice for training %d: %v", approved.ID, err)
		}
	}()

	response.SendSuccess(w, http.StatusOK, "Training approved!", approved.ToResponse())
}

// Export streams the full collection as an xlsx workbook (admin endpoint)
func (s *TrainingService) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	records, err := s.store.All()
	if err != nil {
		response.SendError(w, response.StatusFromError(err), "Error loading trainings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="trainings.xlsx"`)

	if err := services.WriteTrainingsExcel(w, records); err != nil {
		logger.Error("Error exporting trainings: %v", err)
	}
}

// Brochure serves a PDF flyer for one training (admin endpoint)
func (s *TrainingService) Brochure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id, err := utils.ParseID(r)
	if err != nil {
		response.SendError(w, http.StatusBadRequest, err.Error())
		return
	}

	training, err := s.store.Get(id)
	if err != nil {
		response.SendError(w, response.StatusFromError(err), err.Error())
		return
	}

	pdf, err := services.GenerateBrochure(training)
	if err != nil {
		response.SendError(w, http.StatusInternalServerError, "Error generating brochure")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="training-%d.pdf"`, id))
	w.Write(pdf)
}

// validateTrainingForm runs the field validator over the admin form values.
func validateTrainingForm(input models.TrainingInput) map[string]string {
	zero := 0.0
	fields := []validation.Field{
		{Name: "title", Type: "text", Value: input.Title, Required: true},
		{Name: "description", Type: "text", Value: input.Description, Required: true},
		{Name: "provider", Type: "text", Value: input.Provider, Required: true},
		{Name: "category", Type: "text", Value: input.Category, Required: true},
		{Name: "type", Type: "text", Value: input.Type, Required: true},
		{Name: "price", Type: "number", Value: strconv.Itoa(input.Price), Required: true, Min: &zero},
		{Name: "image", Type: "url", Value: input.Image},
	}
	failures := validation.ValidateFields(fields)

	if err := validation.Required(input.Duration); err != nil {
		failures["duration"] = err.Error()
	} else if err := validation.Duration(input.Duration); err != nil {
		failures["duration"] = err.Error()
	}

	return failures
}

func parseAdminCriteria(r *http.Request) listing.Criteria {
	q := r.URL.Query()
	return listing.Criteria{
		Categories: q["category"],
		Status:     q.Get("status"),
		Query:      q.Get("search"),
	}
}
