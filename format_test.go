package jobcoach_test

import (
	"testing"

	"github.com/jobcoach/jobcoach"
	"github.com/stretchr/testify/assert"
)

func TestFormatPosting(t *testing.T) {
	t.Parallel()

	t.Run("includes all present fields", func(t *testing.T) {
		t.Parallel()

		p := &jobcoach.JobPosting{
			Title:          "Senior Go Engineer",
			Company:        "Acme",
			Location:       "Remote",
			Salary:         "$150k-$180k",
			EmploymentType: "full-time",
			Skills:         []string{"Go", "SQL"},
			Requirements:   []string{"5+ years experience"},
			Description:    "Build backend services.",
		}

		out := jobcoach.FormatPosting(p)
		assert.Contains(t, out, "Role: Senior Go Engineer")
		assert.Contains(t, out, "Company: Acme")
		assert.Contains(t, out, "Skills: Go, SQL")
		assert.Contains(t, out, "- 5+ years experience")
		assert.Contains(t, out, "Build backend services.")
	})

	t.Run("omits empty fields", func(t *testing.T) {
		t.Parallel()

		p := &jobcoach.JobPosting{Title: "Engineer"}
		out := jobcoach.FormatPosting(p)
		assert.Equal(t, "Role: Engineer\n", out)
	})
}
