package cli

import (
	"context"
	"fmt"

	"github.com/dkravets/internhub/internal/client/services"
)

// sectionDefaults lists the extraction view's collapsible sections and
// whether each starts expanded on a fresh profile.
var sectionDefaults = []struct {
	key      string
	expanded bool
}{
	{"personal_info", true},
	{"summary", true},
	{"skills", true},
	{"experience", true},
	{"education", false},
	{"projects", false},
	{"certifications", false},
}

func (a *App) mountSections(ctx context.Context) {
	for _, d := range sectionDefaults {
		a.sections = append(a.sections,
			services.NewSection(ctx, a.bus, a.store, a.log, d.key, d.expanded))
	}
}

func (a *App) sectionKeys() []string {
	keys := make([]string, 0, len(a.sections))
	for _, s := range a.sections {
		keys = append(keys, s.Key())
	}
	return keys
}

func (a *App) printSections() {
	for _, s := range a.sections {
		state := "collapsed"
		if s.Expanded() {
			state = "expanded"
		}
		fmt.Fprintf(a.out, "  %-15s %s\n", s.Key(), state)
	}
}

func (a *App) toggleSection(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: toggle <key>")
		return
	}
	for _, s := range a.sections {
		if s.Key() == args[0] {
			if err := s.Toggle(ctx); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
			a.printSections()
			return
		}
	}
	fmt.Fprintln(a.out, "Unknown section:", args[0])
}

// forceExpand uses the write-then-broadcast protocol; a bare expandall only
// re-applies what storage already says.
func (a *App) forceExpand(ctx context.Context) {
	if err := services.ForceExpandAll(ctx, a.bus, a.store, a.sectionKeys()); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	a.printSections()
}

func (a *App) forceCollapse(ctx context.Context) {
	if err := services.ForceCollapseAll(ctx, a.bus, a.store, a.sectionKeys()); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	a.printSections()
}
