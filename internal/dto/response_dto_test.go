package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageResponse(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		limit     int
		wantPages int
	}{
		{"empty", 0, 20, 0},
		{"exact fit", 40, 20, 2},
		{"partial last page", 41, 20, 3},
		{"single row", 1, 100, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPageResponse([]string{"a"}, tc.total, 1, tc.limit)
			assert.Equal(t, tc.wantPages, page.TotalPages)
		})
	}
}

func TestNewPageResponseEncodesEmptyData(t *testing.T) {
	raw, err := json.Marshal(NewPageResponse[CategoryResponse](nil, 0, 1, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":20,"totalPages":0}`, string(raw))
}
