package listing

import (
	"trainings-module/models"
	"trainings-module/utils"
)

// View selects which listing surface the pipeline serves. The two views
// differ in page size and in the fields searched.
type View int

const (
	PublicView View = iota
	AdminView
)

// PageSize returns the fixed page size for the view.
func (v View) PageSize() int {
	if v == AdminView {
		return utils.AdminPageSize
	}
	return utils.PublicPageSize
}

// Price range identifiers
const (
	PriceAny       = ""
	PriceFree      = "free"
	PricePaid      = "paid"
	PriceUpTo50k   = "0-50000"
	Price50kTo100k = "50000-100000"
	PriceAbove100k = "100000+"
)

// Duration bucket identifiers
const (
	DurationUpToMonth  = "1month"
	DurationOneToThree = "1-3months"
	DurationThreeToSix = "3-6months"
	DurationOverSix    = "6months"
)

// Sort key identifiers
const (
	SortNone      = ""
	SortLatest    = "latest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortDuration  = "duration"
	// SortNearest is defined but unsupported; requesting it is an error.
	SortNearest = "nearest"
)

// Criteria is the full facet/search/sort selection narrowing the record
// set. A non-empty Query replaces the facet filters instead of composing
// with them, matching the listing page's precedence.
type Criteria struct {
	Categories []string `json:"categories,omitempty"`
	Price      string   `json:"price,omitempty"`
	Durations  []string `json:"durations,omitempty"`
	State      string   `json:"state,omitempty"`
	City       string   `json:"city,omitempty"`
	Type       string   `json:"type,omitempty"`
	// Status narrows by approval state; used by the admin view only.
	Status string `json:"status,omitempty"`
	Query  string `json:"query,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

// Result is one rendered page of the pipeline output. The presentation
// layer decides how to display it.
type Result struct {
	Page       []models.Training `json:"page"`
	TotalCount int               `json:"total_count"`
	PageIndex  int               `json:"page_index"`
	PageCount  int               `json:"page_count"`
}
