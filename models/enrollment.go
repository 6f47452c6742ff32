package models

import "time"

// Enrollment status constants
const (
	EnrollmentPending   = "PENDING"
	EnrollmentPaid      = "PAID"
	EnrollmentConfirmed = "CONFIRMED"
)

// Enrollment represents a public enrollment in a training. Paid trainings
// go through the payment gateway before the enrollment is confirmed.
type Enrollment struct {
	ID         int        `json:"id"`
	TrainingID int        `json:"training_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Amount     int        `json:"amount"`
	OrderID    string     `json:"order_id,omitempty"`
	PaymentID  string     `json:"payment_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
