package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trainings-module/models"
)

func validForm() models.TrainingInput {
	return models.TrainingInput{
		Title:       "Mobile App Development",
		Description: "Build Android and iOS apps with Flutter.",
		Category:    "tech",
		Type:        "online",
		Price:       120000,
		Duration:    "4 months",
		Provider:    "AppWorks Lagos",
		Image:       "https://example.com/flutter.jpg",
	}
}

func TestValidateTrainingFormAcceptsValidInput(t *testing.T) {
	assert.Empty(t, validateTrainingForm(validForm()))
}

func TestValidateTrainingFormFailures(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*models.TrainingInput)
	}{
		{"missing title", "title", func(in *models.TrainingInput) { in.Title = "" }},
		{"missing description", "description", func(in *models.TrainingInput) { in.Description = "  " }},
		{"missing provider", "provider", func(in *models.TrainingInput) { in.Provider = "" }},
		{"missing category", "category", func(in *models.TrainingInput) { in.Category = "" }},
		{"missing type", "type", func(in *models.TrainingInput) { in.Type = "" }},
		{"negative price", "price", func(in *models.TrainingInput) { in.Price = -100 }},
		{"bad image url", "image", func(in *models.TrainingInput) { in.Image = "not a url" }},
		{"missing duration", "duration", func(in *models.TrainingInput) { in.Duration = "" }},
		{"bad duration grammar", "duration", func(in *models.TrainingInput) { in.Duration = "whenever" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validForm()
			tc.mutate(&in)
			failures := validateTrainingForm(in)
			assert.Contains(t, failures, tc.field)
		})
	}
}

func TestValidateTrainingFormImageOptional(t *testing.T) {
	in := validForm()
	in.Image = ""
	assert.Empty(t, validateTrainingForm(in))
}
