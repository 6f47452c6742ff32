// Package store owns the training collection. All reads and mutations go
// through Store; nothing else touches the persisted slot directly.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"trainings-module/errors"
	"trainings-module/logger"
	"trainings-module/models"
	"trainings-module/storage"
	"trainings-module/utils"
)

// Store persists the ordered training collection in a single slot. The slot
// is a shared mutable blob with last-writer-wins overwrites, so Store
// serializes access with a mutex now that multiple goroutines reach it.
type Store struct {
	mu     sync.Mutex
	slot   storage.Slot
	loaded bool
	items  []models.Training
}

// New returns a Store backed by the given slot.
func New(slot storage.Slot) *Store {
	return &Store{slot: slot}
}

// load reads the collection into memory. An empty slot is seeded and
// persisted; a corrupt blob falls back to the seed set with a warning so a
// bad write never takes the listing down. Callers must hold s.mu.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, ok, err := s.slot.Read(utils.TrainingsSlot)
	if err != nil {
		return errors.E(errors.Internal, "error loading trainings", err)
	}

	if !ok {
		s.items = SeedTrainings()
		if err := s.persist(s.items); err != nil {
			return err
		}
		s.loaded = true
		return nil
	}

	var items []models.Training
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Stored training collection is corrupt, falling back to seed data: %v", err)
		s.items = SeedTrainings()
		if err := s.persist(s.items); err != nil {
			return err
		}
		s.loaded = true
		return nil
	}

	s.items = items
	s.loaded = true
	return nil
}

// persist serializes items and overwrites the slot.
func (s *Store) persist(items []models.Training) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.E(errors.Internal, "error serializing trainings", err)
	}
	if err := s.slot.Write(utils.TrainingsSlot, data); err != nil {
		return errors.E(errors.Internal, "error saving trainings", err)
	}
	return nil
}

// All returns a copy of the full collection in stored (insertion) order.
func (s *Store) All() ([]models.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	out := make([]models.Training, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Get returns the training with the given id.
func (s *Store) Get(id int) (*models.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			t := s.items[i]
			return &t, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("training %d not found", id))
}

// Add normalizes the input, assigns a time-derived unique id and createdAt,
// prepends the record and persists. Returns the stored record.
func (s *Store) Add(input models.TrainingInput) (*models.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	t, err := normalize(input)
	if err != nil {
		return nil, err
	}

	// Date-derived ids can collide when two adds land in the same
	// millisecond; bump until unique.
	id := int(time.Now().UnixMilli())
	for s.exists(id) {
		id++
	}
	t.ID = id
	t.CreatedAt = time.Now().UTC()

	next := append([]models.Training{*t}, s.items...)
	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.items = next
	return t, nil
}

// Update merges the input into the record matched by id, sets updatedAt and
// persists. A missing id is an explicit not-found error.
func (s *Store) Update(id int, input models.TrainingInput) (*models.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("training %d not found", id))
	}

	t, err := normalize(input)
	if err != nil {
		return nil, err
	}
	t.ID = id
	t.CreatedAt = s.items[idx].CreatedAt
	now := time.Now().UTC()
	t.UpdatedAt = &now

	next := make([]models.Training, len(s.items))
	copy(next, s.items)
	next[idx] = *t

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.items = next
	return t, nil
}

// Remove deletes the record matched by id and persists. The deletion is
// permanent; there is no soft delete.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return errors.NewNotFoundError(fmt.Sprintf("training %d not found", id))
	}

	next := make([]models.Training, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// SetStatus performs the targeted status mutation used by the approval
// action. Only status and updatedAt change.
func (s *Store) SetStatus(id int, status string) (*models.Training, error) {
	if !validStatus(status) {
		return nil, errors.NewInvalidParamsError(fmt.Sprintf("invalid status: %s", status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("training %d not found", id))
	}

	next := make([]models.Training, len(s.items))
	copy(next, s.items)
	now := time.Now().UTC()
	next[idx].Status = status
	next[idx].UpdatedAt = &now

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.items = next
	t := next[idx]
	return &t, nil
}

// Approve moves a training to active status.
func (s *Store) Approve(id int) (*models.Training, error) {
	return s.SetStatus(id, utils.StatusActive)
}

func (s *Store) exists(id int) bool {
	return s.indexOf(id) >= 0
}

func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// normalize trims free text, maps empty optional fields to absent values
// and enforces the collection invariants.
func normalize(input models.TrainingInput) (*models.Training, error) {
	t := models.Training{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Type:        strings.TrimSpace(input.Type),
		Price:       input.Price,
		Duration:    strings.TrimSpace(input.Duration),
		Provider:    strings.TrimSpace(input.Provider),
		Status:      strings.TrimSpace(input.Status),
		Featured:    input.Featured,
	}

	if t.Title == "" || t.Description == "" || t.Provider == "" {
		return nil, errors.NewInvalidParamsError("title, description and provider are required")
	}
	if !validCategory(t.Category) {
		return nil, errors.NewInvalidParamsError(fmt.Sprintf("invalid category: %s", t.Category))
	}
	if t.Type != utils.TypeOnline && t.Type != utils.TypePhysical {
		return nil, errors.NewInvalidParamsError(fmt.Sprintf("invalid type: %s", t.Type))
	}
	if t.Price < 0 {
		return nil, errors.NewInvalidParamsError("price must not be negative")
	}
	if t.Status == "" {
		t.Status = utils.StatusPending
	}
	if !validStatus(t.Status) {
		return nil, errors.NewInvalidParamsError(fmt.Sprintf("invalid status: %s", t.Status))
	}

	t.Image = optional(input.Image)
	if t.Type == utils.TypePhysical {
		t.Location = optional(input.Location)
		t.City = optional(input.City)
		t.State = optional(input.State)
	}

	return &t, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func validStatus(s string) bool {
	return s == utils.StatusPending || s == utils.StatusActive || s == utils.StatusInactive
}

func validCategory(c string) bool {
	return c == utils.CategoryTech || c == utils.CategoryBusiness || c == utils.CategoryCreative
}
