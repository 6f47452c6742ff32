package listing

import (
	"fmt"

	"trainings-module/errors"
	"trainings-module/models"
)

// ViewState is the explicit, serializable pagination state for one listing
// surface. It is passed into and returned from the pipeline; there is no
// shared current-page singleton.
type ViewState struct {
	View     View     `json:"view"`
	Criteria Criteria `json:"criteria"`
	Page     int      `json:"page"`
}

// NewViewState returns the initial state for a view: no criteria, page 1.
func NewViewState(view View) ViewState {
	return ViewState{View: view, Page: 1}
}

// WithCriteria replaces the criteria and resets the page to 1. Any filter
// or search change restarts pagination from the first page.
func (s ViewState) WithCriteria(c Criteria) ViewState {
	s.Criteria = c
	s.Page = 1
	return s
}

// GoToPage moves to the requested page, keeping the criteria. Requests
// below 1 or beyond the last page of the filtered set are rejected and the
// state is returned unchanged.
func (s ViewState) GoToPage(records []models.Training, page int) (ViewState, error) {
	filtered := Filter(records, s.Criteria, s.View)

	size := s.View.PageSize()
	pageCount := (len(filtered) + size - 1) / size

	if page < 1 || page > pageCount {
		return s, errors.NewInvalidParamsError(fmt.Sprintf("page %d out of range", page))
	}

	s.Page = page
	return s, nil
}
