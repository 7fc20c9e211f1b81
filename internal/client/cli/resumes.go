package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dkravets/internhub/internal/client/models"
)

func (a *App) list(ctx context.Context) {
	records, err := a.registry.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No resumes uploaded yet")
		return
	}
	a.printRecords(records)
}

func (a *App) printRecords(records []models.ResumeRecord) {
	for i, r := range records {
		marker := " "
		if r.IsActive {
			marker = "*"
		}
		skills := ""
		if len(r.ExtractedSkills) > 0 {
			skills = " [" + strings.Join(r.ExtractedSkills, ", ") + "]"
		}
		fmt.Fprintf(a.out, "%s %d. %s%s\n", marker, i+1, r.FileName, skills)
	}
}

// resolveRecord maps a 1-based list index (as printed by `list`) to a
// record from the current in-memory view.
func (a *App) resolveRecord(args []string, usage string) (models.ResumeRecord, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return models.ResumeRecord{}, false
	}
	records := a.registry.Records()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(records) {
		fmt.Fprintln(a.out, "No such resume; run 'list' first")
		return models.ResumeRecord{}, false
	}
	return records[n-1], true
}

func (a *App) activate(ctx context.Context, args []string) {
	record, ok := a.resolveRecord(args, "activate <n>")
	if !ok {
		return
	}

	if err := a.registry.Activate(ctx, record.ID); err != nil {
		// Partial failures are reported but the flow continues: whatever
		// was fetched is already on display.
		fmt.Fprintln(a.out, "Warning:", err)
	} else {
		fmt.Fprintf(a.out, "Activated %s\n", record.FileName)
	}
	a.show()
}

func (a *App) delete(ctx context.Context, args []string) {
	record, ok := a.resolveRecord(args, "delete <n>")
	if !ok {
		return
	}

	// Confirmation gate: Remove itself never prompts.
	if !Confirm(a.reader, fmt.Sprintf("Delete %s?", record.FileName), a.out) {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.registry.Remove(ctx, record.ID); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted %s\n", record.FileName)
}

func (a *App) show() {
	extraction, selected := a.view.Snapshot()
	if extraction == nil {
		fmt.Fprintln(a.out, "Nothing to show; upload or activate a resume first")
		return
	}
	if selected != "" {
		fmt.Fprintln(a.out, "Showing extraction for resume", selected)
	}
	a.renderExtraction(extraction)
}

func (a *App) renderExtraction(e *models.StructuredExtraction) {
	if e.PersonalInfo.Name != "" {
		fmt.Fprintln(a.out, "Name:", e.PersonalInfo.Name)
	}
	if e.Summary != "" {
		fmt.Fprintln(a.out, "Summary:", e.Summary)
	}
	if len(e.AllSkills) > 0 {
		fmt.Fprintln(a.out, "Skills:", strings.Join(e.AllSkills, ", "))
	}
	if e.TotalExperienceYears > 0 {
		fmt.Fprintf(a.out, "Experience: %.1f years\n", e.TotalExperienceYears)
	}
	for _, exp := range e.Experience {
		fmt.Fprintf(a.out, "  - %s at %s (%s)\n", exp.Title, exp.Company, exp.Duration)
	}
	for _, edu := range e.Education {
		fmt.Fprintf(a.out, "  - %s, %s (%s)\n", edu.Degree, edu.Institution, edu.Year)
	}
}
