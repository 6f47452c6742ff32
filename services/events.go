package services

import (
	"fmt"
	"time"

	"trainings-module/config"
	"trainings-module/logger"
	"trainings-module/models"
)

// TrainingEvent represents a training lifecycle event published to Kafka
type TrainingEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"` // training.created, training.updated, ...
	TrainingID int       `json:"training_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// PublishTrainingEvent publishes a training lifecycle event. Non-blocking,
// best-effort delivery; a publish failure never affects the mutation that
// triggered it.
func PublishTrainingEvent(eventType string, t *models.Training) {
	event := TrainingEvent{
		EventID:    fmt.Sprintf("training-%d-%d", t.ID, time.Now().UnixNano()),
		EventType:  eventType,
		TrainingID: t.ID,
		Title:      t.Title,
		Category:   t.Category,
		Status:     t.Status,
		Timestamp:  time.Now().UTC(),
	}

	go func() {
		key := fmt.Sprintf("training-%d", t.ID)
		if err := Publish(config.AppConfig.KafkaTopic, key, event); err != nil {
			logger.Warn("Failed to publish %s event for training %d: %v", eventType, t.ID, err)
		}
	}()
}

// PublishEnrollmentEvent publishes an enrollment lifecycle event.
func PublishEnrollmentEvent(eventType string, e *models.Enrollment) {
	event := map[string]interface{}{
		"event_id":    fmt.Sprintf("enrollment-%d-%d", e.ID, time.Now().UnixNano()),
		"event_type":  eventType,
		"training_id": e.TrainingID,
		"order_id":    e.OrderID,
		"amount":      e.Amount,
		"status":      e.Status,
		"ts":          time.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		key := fmt.Sprintf("enrollment-%d", e.ID)
		if err := Publish(config.AppConfig.KafkaTopic, key, event); err != nil {
			logger.Warn("Failed to publish %s event for enrollment %d: %v", eventType, e.ID, err)
		}
	}()
}
