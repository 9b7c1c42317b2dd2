package jobcoach

import (
	"fmt"
	"strings"
)

// FormatPosting formats a posting for embedding into an LLM prompt.
// Only fields that are present are included.
func FormatPosting(p *JobPosting) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: %s\n", p.Title)
	if p.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", p.Company)
	}
	if p.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", p.Location)
	}
	if p.EmploymentType != "" {
		fmt.Fprintf(&sb, "Employment type: %s\n", p.EmploymentType)
	}
	if p.Salary != "" {
		fmt.Fprintf(&sb, "Salary: %s\n", p.Salary)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	if len(p.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		for _, r := range p.Requirements {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	}
	if p.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", p.Description)
	}
	return sb.String()
}
