package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSortClause(t *testing.T) {
	tests := []struct {
		name   string
		filter UserFilter
		want   string
	}{
		{"default", UserFilter{}, "created_at DESC"},
		{"explicit column", UserFilter{SortBy: "email"}, "email DESC"},
		{"ascending", UserFilter{SortBy: "display_name", SortOrder: "asc"}, "display_name ASC"},
		{"unknown column falls back", UserFilter{SortBy: "password_hash"}, "created_at DESC"},
		{"unknown direction falls back", UserFilter{SortOrder: "random()"}, "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userSortClause(tt.filter))
		})
	}
}
