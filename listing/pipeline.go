// Package listing is the pure filter/sort/paginate pipeline behind both the
// public listing page and the admin table. It holds no state of its own;
// callers pass the full collection and an explicit ViewState.
package listing

import (
	"sort"
	"strconv"
	"strings"

	"trainings-module/errors"
	"trainings-module/models"
)

// Apply narrows, orders and pages the collection according to the state.
// Filtering never mutates the input slice.
func Apply(records []models.Training, state ViewState) (*Result, error) {
	filtered := Filter(records, state.Criteria, state.View)

	if err := sortRecords(filtered, state.Criteria.Sort); err != nil {
		return nil, err
	}

	size := state.View.PageSize()
	pageCount := (len(filtered) + size - 1) / size

	start := (state.Page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &Result{
		Page:       filtered[start:end],
		TotalCount: len(filtered),
		PageIndex:  state.Page,
		PageCount:  pageCount,
	}, nil
}

// Filter applies the criteria to the collection, preserving order. A
// non-empty search query takes precedence over the facet filters.
func Filter(records []models.Training, c Criteria, view View) []models.Training {
	if query := strings.TrimSpace(c.Query); query != "" {
		return search(records, query, view)
	}

	out := make([]models.Training, 0, len(records))
	for _, t := range records {
		if matchesFacets(t, c) {
			out = append(out, t)
		}
	}
	return out
}

// matchesFacets AND-combines the facet predicates; each is a pure filter so
// their order does not affect the result.
func matchesFacets(t models.Training, c Criteria) bool {
	if len(c.Categories) > 0 && !contains(c.Categories, t.Category) {
		return false
	}
	if !matchesPrice(t.Price, c.Price) {
		return false
	}
	if len(c.Durations) > 0 && !matchesDurations(t.Duration, c.Durations) {
		return false
	}
	if c.State != "" && (t.State == nil || *t.State != c.State) {
		return false
	}
	if c.City != "" && (t.City == nil || *t.City != c.City) {
		return false
	}
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	return true
}

func matchesPrice(price int, tier string) bool {
	switch tier {
	case PriceFree:
		return price == 0
	case PricePaid:
		return price > 0
	case PriceUpTo50k:
		return price <= 50000
	case Price50kTo100k:
		return price > 50000 && price <= 100000
	case PriceAbove100k:
		return price > 100000
	default:
		return true
	}
}

// matchesDurations checks membership in at least one selected bucket.
// Durations with no leading integer match none of the parsed buckets.
func matchesDurations(duration string, buckets []string) bool {
	lower := strings.ToLower(duration)
	months, parsed := leadingInt(lower)

	for _, b := range buckets {
		switch b {
		case DurationUpToMonth:
			if strings.Contains(lower, "1 month") || strings.Contains(lower, "weeks") {
				return true
			}
		case DurationOneToThree:
			if parsed && months >= 1 && months <= 3 {
				return true
			}
		case DurationThreeToSix:
			if parsed && months > 3 && months <= 6 {
				return true
			}
		case DurationOverSix:
			if parsed && months > 6 {
				return true
			}
		}
	}
	return false
}

// leadingInt parses the integer prefix of a duration string.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// search is a case-insensitive substring match. The admin table searches
// title, description and provider; the public page searches title,
// description, category and location.
func search(records []models.Training, query string, view View) []models.Training {
	query = strings.ToLower(query)

	out := make([]models.Training, 0, len(records))
	for _, t := range records {
		var hit bool
		if view == AdminView {
			hit = containsFold(t.Title, query) ||
				containsFold(t.Description, query) ||
				containsFold(t.Provider, query)
		} else {
			hit = containsFold(t.Title, query) ||
				containsFold(t.Description, query) ||
				containsFold(t.Category, query) ||
				(t.Location != nil && containsFold(*t.Location, query))
		}
		if hit {
			out = append(out, t)
		}
	}
	return out
}

func sortRecords(records []models.Training, key string) error {
	switch key {
	case SortNone:
		// insertion order retained
	case SortLatest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].ID > records[j].ID
		})
	case SortPriceAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price < records[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price > records[j].Price
		})
	case SortDuration:
		sort.SliceStable(records, func(i, j int) bool {
			a, _ := leadingInt(strings.ToLower(records[i].Duration))
			b, _ := leadingInt(strings.ToLower(records[j].Duration))
			return a < b
		})
	case SortNearest:
		return errors.NewInvalidParamsError("sort by nearest is not supported")
	default:
		return errors.NewInvalidParamsError("unknown sort key: " + key)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
