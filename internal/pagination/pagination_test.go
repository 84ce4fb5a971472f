package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	assert.Equal(t, 21, Window(20))
	assert.Equal(t, 2, Window(1))
	assert.Equal(t, 1, Window(0))
	assert.Equal(t, 1, Window(-3))
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		take     int
		wantPage []int
		wantNext bool
	}{
		{"full window means a next page", []int{1, 2, 3, 4}, 3, []int{1, 2, 3}, true},
		{"short result is the last page", []int{1, 2}, 3, []int{1, 2}, false},
		{"exact fit is the last page", []int{1, 2, 3}, 3, []int{1, 2, 3}, false},
		{"empty result", []int{}, 3, []int{}, false},
		{"zero take discards the probe row", []int{1}, 0, []int{}, false},
		{"negative take", []int{1}, -1, []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, hasNext := Trim(tt.items, tt.take)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantNext, hasNext)
		})
	}
}

func TestTrimNeverMutatesBeyondSlicing(t *testing.T) {
	items := []string{"a", "b", "c"}
	page, hasNext := Trim(items, 2)
	assert.True(t, hasNext)
	assert.Equal(t, []string{"a", "b"}, page)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}
