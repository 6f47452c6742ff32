package utils

import "trainings-module/models"

// ConvertTrainingsToResponse converts a slice of Training to
// TrainingResponse for API responses
func ConvertTrainingsToResponse(trainings []models.Training) []models.TrainingResponse {
	responses := make([]models.TrainingResponse, len(trainings))
	for i := range trainings {
		responses[i] = trainings[i].ToResponse()
	}
	return responses
}
