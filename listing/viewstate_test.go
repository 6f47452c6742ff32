package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainings-module/store"
	"trainings-module/utils"
)

func TestNewViewStateStartsAtPageOne(t *testing.T) {
	state := NewViewState(PublicView)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, PublicView, state.View)
}

func TestGoToPageRejectsOutOfRange(t *testing.T) {
	records := store.SeedTrainings()
	state := NewViewState(AdminView)

	// 6 records fit on a single admin page
	for _, page := range []int{0, -1, 2, 99} {
		next, err := state.GoToPage(records, page)
		assert.Error(t, err, "page %d must be rejected", page)
		assert.Equal(t, state, next, "rejected request must leave the state unchanged")
	}

	next, err := state.GoToPage(records, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Page)
}

func TestGoToPageBoundsFollowFilteredSet(t *testing.T) {
	records := store.SeedTrainings()

	// Narrowed to one creative record on the public view, page 2 of the
	// unfiltered set is no longer reachable.
	state := NewViewState(PublicView).WithCriteria(Criteria{Query: "catering"})
	_, err := state.GoToPage(records, 2)
	assert.Error(t, err)
}

func TestWithCriteriaResetsPage(t *testing.T) {
	records := store.SeedTrainings()
	extra := records
	for i := 7; i <= 12; i++ {
		rec := records[0]
		rec.ID = i
		extra = append(extra, rec)
	}

	state := NewViewState(PublicView)
	state, err := state.GoToPage(extra, 2)
	require.NoError(t, err)
	require.Equal(t, 2, state.Page)

	state = state.WithCriteria(Criteria{Categories: []string{utils.CategoryTech}})
	assert.Equal(t, 1, state.Page, "criteria change must restart pagination")
}
