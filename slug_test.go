package jobcoach_test

import (
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Senior Go Engineer", "senior-go-engineer"},
		{"special characters dropped", "C++ / Rust (Backend)", "c-rust-backend"},
		{"collapses separators", "Staff  Engineer -- Platform", "staff-engineer-platform"},
		{"trailing separator trimmed", "Engineer!", "engineer"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, jobcoach.Slugify(tt.input))
		})
	}
}
