package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainings-module/errors"
	"trainings-module/models"
	"trainings-module/storage"
	"trainings-module/utils"
)

func newTestStore(t *testing.T) (*Store, *storage.FileSlot) {
	t.Helper()
	slot, err := storage.NewFileSlot(t.TempDir())
	require.NoError(t, err)
	return New(slot), slot
}

func validInput() models.TrainingInput {
	return models.TrainingInput{
		Title:       "Mobile App Development",
		Description: "Build Android and iOS apps with Flutter.",
		Category:    utils.CategoryTech,
		Type:        utils.TypeOnline,
		Price:       120000,
		Duration:    "4 months",
		Provider:    "AppWorks Lagos",
	}
}

func TestEmptySlotIsSeededAndPersisted(t *testing.T) {
	s, slot := newTestStore(t)

	items, err := s.All()
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, utils.StatusPending, items[2].Status)

	data, ok, err := slot.Read(utils.TrainingsSlot)
	require.NoError(t, err)
	require.True(t, ok, "seed set must be written back to the slot")

	var persisted []models.Training
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Len(t, persisted, 6)
}

func TestCorruptSlotFallsBackToSeed(t *testing.T) {
	slot, err := storage.NewFileSlot(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, slot.Write(utils.TrainingsSlot, []byte("{not json")))

	s := New(slot)
	items, err := s.All()
	require.NoError(t, err)
	assert.Len(t, items, 6)

	// the slot was repaired in place
	data, ok, err := slot.Read(utils.TrainingsSlot)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []models.Training
	assert.NoError(t, json.Unmarshal(data, &persisted))
}

func TestAddPrependsWithFreshID(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Add(validInput())
	require.NoError(t, err)
	assert.Greater(t, created.ID, 6)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, utils.StatusPending, created.Status, "new records default to pending")

	items, err := s.All()
	require.NoError(t, err)
	require.Len(t, items, 7)
	assert.Equal(t, created.ID, items[0].ID, "new record must come first")
}

func TestAddAssignsDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.Add(validInput())
	require.NoError(t, err)
	b, err := s.Add(validInput())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddValidatesInput(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(*models.TrainingInput)
	}{
		{"missing title", func(in *models.TrainingInput) { in.Title = "  " }},
		{"missing provider", func(in *models.TrainingInput) { in.Provider = "" }},
		{"bad category", func(in *models.TrainingInput) { in.Category = "sports" }},
		{"bad type", func(in *models.TrainingInput) { in.Type = "hybrid" }},
		{"negative price", func(in *models.TrainingInput) { in.Price = -1 }},
		{"bad status", func(in *models.TrainingInput) { in.Status = "archived" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := s.Add(in)
			require.Error(t, err)
			assert.Equal(t, errors.Invalid, errors.KindOf(err))
		})
	}
}

func TestLocationFieldsOnlyKeptForPhysical(t *testing.T) {
	s, _ := newTestStore(t)

	in := validInput()
	in.Location = "Lekki"
	in.City = "Lagos"
	in.State = "Lagos"

	created, err := s.Add(in)
	require.NoError(t, err)
	assert.Nil(t, created.Location, "online records carry no location")

	in.Type = utils.TypePhysical
	created, err = s.Add(in)
	require.NoError(t, err)
	require.NotNil(t, created.Location)
	assert.Equal(t, "Lekki", *created.Location)
}

func TestUpdatePreservesCreatedAtAndSetsUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Add(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Mobile App Development (Advanced)"
	updated, err := s.Update(created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Mobile App Development (Advanced)", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Update(424242, validInput())
	require.Error(t, err)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Remove(3))

	_, err := s.Get(3)
	require.Error(t, err)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))

	items, err := s.All()
	require.NoError(t, err)
	assert.Len(t, items, 5)

	err = s.Remove(3)
	require.Error(t, err)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))
}

func TestApproveChangesOnlyStatus(t *testing.T) {
	s, _ := newTestStore(t)

	before, err := s.Get(3)
	require.NoError(t, err)
	require.Equal(t, utils.StatusPending, before.Status)

	approved, err := s.Approve(3)
	require.NoError(t, err)
	assert.Equal(t, utils.StatusActive, approved.Status)
	require.NotNil(t, approved.UpdatedAt)

	assert.Equal(t, before.Title, approved.Title)
	assert.Equal(t, before.Price, approved.Price)
	assert.Equal(t, before.CreatedAt, approved.CreatedAt)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.SetStatus(1, "archived")
	require.Error(t, err)
	assert.Equal(t, errors.Invalid, errors.KindOf(err))
}

func TestCollectionSurvivesRestart(t *testing.T) {
	slot, err := storage.NewFileSlot(t.TempDir())
	require.NoError(t, err)

	first := New(slot)
	created, err := first.Add(validInput())
	require.NoError(t, err)

	second := New(slot)
	got, err := second.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestAllReturnsACopy(t *testing.T) {
	s, _ := newTestStore(t)

	items, err := s.All()
	require.NoError(t, err)
	items[0].Title = "mutated"

	again, err := s.All()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)
}
