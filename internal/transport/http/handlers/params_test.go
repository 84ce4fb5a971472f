package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTake(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   int
		wantOK bool
	}{
		{"absent means default", "", defaultTake, true},
		{"explicit value", "take=7", 7, true},
		{"zero is honored", "take=0", 0, true},
		{"above the cap clamps", "take=500", maxTake, true},
		{"at the cap", "take=50", 50, true},
		{"negative is an error", "take=-1", 0, false},
		{"not a number", "take=abc", 0, false},
		{"float", "take=2.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/?"+tt.query, nil)
			take, ok := parseTake(req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, take)
			}
		})
	}
}

func TestParseCursor(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest("GET", "/?cursor="+id.String(), nil)
	got := parseCursor(req)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.Nil(t, parseCursor(httptest.NewRequest("GET", "/", nil)))
	assert.Nil(t, parseCursor(httptest.NewRequest("GET", "/?cursor=not-a-uuid", nil)))
}
