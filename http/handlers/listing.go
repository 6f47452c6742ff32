package handlers

import (
	"fmt"
	"net/http"

	"trainings-module/http/response"
	"trainings-module/listing"
	"trainings-module/store"
	"trainings-module/utils"
)

// ListingService serves the public training listing
type ListingService struct {
	store *store.Store
}

func NewListingService(s *store.Store) *ListingService {
	return &ListingService{store: s}
}

// List serves the public listing page: facet filters, search, sort, page.
func (s *ListingService) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.SendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	records, err := s.store.All()
	if err != nil {
		response.SendError(w, response.StatusFromError(err), "Error loading trainings")
		return
	}

	criteria := parsePublicCriteria(r)
	state := listing.NewViewState(listing.PublicView).WithCriteria(criteria)

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

	found := "trainings"
	if result.TotalCount == 1 {
		found = "training"
	}

	response.SendSuccess(w, http.StatusOK, fmt.Sprintf("%d %s found", result.TotalCount, found), map[string]interface{}{
		"trainings":   utils.ConvertTrainingsToResponse(result.Page),
		"total_count": result.TotalCount,
		"page_index":  result.PageIndex,
		"page_count":  result.PageCount,
	})
}

// Get serves a single training by id.
func (s *ListingService) Get(w http.ResponseWriter, r *http.Request) {
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
		response.SendError(w, response.StatusFromError(err), "Training not found")
		return
	}

	response.SendSuccess(w, http.StatusOK, "Training retrieved", training.ToResponse())
}

func parsePublicCriteria(r *http.Request) listing.Criteria {
	q := r.URL.Query()
	return listing.Criteria{
		Categories: q["category"],
		Price:      q.Get("price"),
		Durations:  q["duration"],
		State:      q.Get("state"),
		City:       q.Get("city"),
		Type:       q.Get("type"),
		Query:      q.Get("search"),
		Sort:       q.Get("sort"),
	}
}
