package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"default", Filter{}, "b.start_time DESC"},
		{"explicit column", Filter{SortBy: "total_price"}, "b.total_price DESC"},
		{"ascending", Filter{SortBy: "created_at", SortOrder: "asc"}, "b.created_at ASC"},
		{"ascending uppercase", Filter{SortBy: "status", SortOrder: "ASC"}, "b.status ASC"},
		{"unknown column falls back", Filter{SortBy: "id; DROP TABLE bookings"}, "b.start_time DESC"},
		{"unknown direction falls back", Filter{SortBy: "start_time", SortOrder: "sideways"}, "b.start_time DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortClause(tt.filter))
		})
	}
}
