package models

import "time"

// Training represents a single training-program listing
type Training struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Price       int        `json:"price"`
	Duration    string     `json:"duration"`
	Provider    string     `json:"provider"`
	Location    *string    `json:"location"`
	City        *string    `json:"city,omitempty"`
	State       *string    `json:"state,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Status      string     `json:"status"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TrainingInput is the raw field mapping collected by the presentation
// layer for create/update. Optional fields arrive as empty strings and are
// normalized to absent values before persisting.
type TrainingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
	Provider    string `json:"provider"`
	Location    string `json:"location"`
	City        string `json:"city"`
	State       string `json:"state"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Featured    bool   `json:"featured"`
}

// TrainingResponse is the structured response for API responses
type TrainingResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Price       int     `json:"price"`
	Duration    string  `json:"duration"`
	Provider    string  `json:"provider"`
	Location    *string `json:"location"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Image       *string `json:"image,omitempty"`
	Status      string  `json:"status"`
	Featured    bool    `json:"featured"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

// ToResponse converts Training to TrainingResponse with formatted timestamps
func (t *Training) ToResponse() TrainingResponse {
	var updatedAt *string
	if t.UpdatedAt != nil {
		formatted := t.UpdatedAt.Format(time.RFC3339)
		updatedAt = &formatted
	}
	return TrainingResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Type:        t.Type,
		Price:       t.Price,
		Duration:    t.Duration,
		Provider:    t.Provider,
		Location:    t.Location,
		City:        t.City,
		State:       t.State,
		Image:       t.Image,
		Status:      t.Status,
		Featured:    t.Featured,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   updatedAt,
	}
}
