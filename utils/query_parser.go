package utils

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParsePage extracts the requested page index, defaulting to 1.
func ParsePage(r *http.Request) (int, error) {
	str := r.URL.Query().Get("page")
	if str == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid page: %s", str)
	}
	return page, nil
}

// ParseID extracts the required integer id query parameter.
func ParseID(r *http.Request) (int, error) {
	str := r.URL.Query().Get("id")
	if str == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", str)
	}
	return id, nil
}
