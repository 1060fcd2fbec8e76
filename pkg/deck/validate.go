package deck

import (
	"fmt"
	"strings"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Validate checks that every slide has a known kind and the payload its
// assembler needs. It does not check that content fits the page; see
// [canvas.Canvas.OutOfBounds] for that.
func (d *Deck) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if d.Width <= 0 || d.Height <= 0 {
		add("page size %.2fx%.2f must be positive", d.Width, d.Height)
	}
	if len(d.Slides) == 0 {
		add("deck has no slides")
	}
	for i, r := range d.Roles {
		if r.Name == "" {
			add("role %d has no name", i+1)
		}
	}

	for i, s := range d.Slides {
		at := fmt.Sprintf("slide %d (%s)", i+1, s.Kind)
		if _, ok := assemblers[s.Kind]; !ok {
			add("slide %d: unknown kind %q", i+1, s.Kind)
			continue
		}
		switch s.Kind {
		case KindTitle:
			if s.Cover == nil {
				add("%s: missing cover", at)
			}
		case KindOverview:
			if len(s.Panels) == 0 {
				add("%s: no panels", at)
			}
			for j, p := range s.Panels {
				if p.Box.W <= 0 || p.Box.H <= 0 {
					add("%s: panel %d has an empty box", at, j+1)
				}
			}
		case KindRoles, KindNavigation:
			if len(d.Roles) == 0 {
				add("%s: deck defines no roles", at)
			}
		case KindFlow:
			if s.Flow == nil || len(s.Flow.Nodes) == 0 {
				add("%s: flow has no nodes", at)
			}
		case KindCards:
			if len(s.Screens) == 0 {
				add("%s: no screens", at)
			}
		case KindWorkflow:
			if len(s.Workflows) == 0 {
				add("%s: no workflows", at)
			}
		case KindClosing:
			if s.Closing == nil {
				add("%s: missing closing payload", at)
			}
		}
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrCodeInvalidDeck, "%s", strings.Join(problems, "; "))
	}
	return nil
}
