package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultTake = 20
	maxTake     = 50
)

// parseTake reads the page size. Absent means the default; anything above the
// cap is clamped; zero is honored as an explicit empty page. Malformed or
// negative values are the caller's error.
func parseTake(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("take")
	if raw == "" {
		return defaultTake, true
	}
	take, err := strconv.Atoi(raw)
	if err != nil || take < 0 {
		return 0, false
	}
	if take > maxTake {
		take = maxTake
	}
	return take, true
}

// parseCursor reads the resume-after cursor. A missing or malformed cursor
// silently means "first page" — it is never an input error.
func parseCursor(r *http.Request) *uuid.UUID {
	raw := r.URL.Query().Get("cursor")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
