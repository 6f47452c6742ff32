package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"trainings-module/errors"
	"trainings-module/models"
	"trainings-module/storage"
	"trainings-module/utils"
)

// EnrollmentStore persists enrollments in their own slot, separate from the
// training collection.
type EnrollmentStore struct {
	mu   sync.Mutex
	slot storage.Slot
}

func NewEnrollmentStore(slot storage.Slot) *EnrollmentStore {
	return &EnrollmentStore{slot: slot}
}

func (s *EnrollmentStore) load() ([]models.Enrollment, error) {
	data, ok, err := s.slot.Read(utils.EnrollmentsSlot)
	if err != nil {
		return nil, errors.E(errors.Internal, "error loading enrollments", err)
	}
	if !ok {
		return nil, nil
	}
	var items []models.Enrollment
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.E(errors.Internal, "error decoding enrollments", err)
	}
	return items, nil
}

func (s *EnrollmentStore) persist(items []models.Enrollment) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.E(errors.Internal, "error serializing enrollments", err)
	}
	if err := s.slot.Write(utils.EnrollmentsSlot, data); err != nil {
		return errors.E(errors.Internal, "error saving enrollments", err)
	}
	return nil
}

// Add assigns an id and createdAt, prepends and persists.
func (s *EnrollmentStore) Add(e models.Enrollment) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}

	id := int(time.Now().UnixMilli())
	for containsEnrollment(items, id) {
		id++
	}
	e.ID = id
	e.CreatedAt = time.Now().UTC()

	items = append([]models.Enrollment{e}, items...)
	if err := s.persist(items); err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByOrder returns the enrollment created for a payment order.
func (s *EnrollmentStore) FindByOrder(orderID string) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].OrderID == orderID {
			e := items[i]
			return &e, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("enrollment not found for order %s", orderID))
}

// MarkPaid records the gateway payment id against the enrollment matched by
// order id and confirms it.
func (s *EnrollmentStore) MarkPaid(orderID, paymentID string) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].OrderID == orderID {
			now := time.Now().UTC()
			items[i].PaymentID = paymentID
			items[i].Status = models.EnrollmentConfirmed
			items[i].UpdatedAt = &now
			if err := s.persist(items); err != nil {
				return nil, err
			}
			e := items[i]
			return &e, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("enrollment not found for order %s", orderID))
}

// All returns every enrollment, newest first.
func (s *EnrollmentStore) All() ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func containsEnrollment(items []models.Enrollment, id int) bool {
	for i := range items {
		if items[i].ID == id {
			return true
		}
	}
	return false
}
