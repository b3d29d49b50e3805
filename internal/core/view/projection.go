// Package view projects canonical record state into a renderable view.
// This is part of the Functional Core - no I/O, only pure functions.
// Views are re-rendered wholesale from state on every change; surfaces are
// never patched field-by-field.
package view

import (
	"fmt"
	"strings"

	"github.com/example/vouch/internal/core/bgcheck"
)

// Report is the projected content of one filed observation slot.
type Report struct {
	Slot     int
	Date     string
	Notes    string
	Issues   string
	AuthorID string
}

// RecordState is the canonical state of one candidate record, as read from
// the store immediately before projection.
type RecordState struct {
	OriginID      string
	Candidate     string
	RecommenderID string
	Note          string
	Status        bgcheck.Status
	Selected      []string
	Reports       []Report
	SlotCount     int
}

// View is the renderable projection of a record. The same view is applied
// to every replica surface of the record.
type View struct {
	Title       string
	Header      string   // "PASS" / "FAIL" banner, empty while unset
	Checklist   []string // One marked line per fixed criterion
	Reports     []string // One line per slot, filled or open
	Affordances []string // Actions still open to reviewers
}

// Project builds the view for a record state.
func Project(state RecordState) View {
	v := View{
		Title: fmt.Sprintf("Candidate recommendation: %s (by %s)", state.Candidate, state.RecommenderID),
	}

	switch state.Status {
	case bgcheck.StatusPass:
		v.Header = "Background check: PASS"
	case bgcheck.StatusFail:
		v.Header = "Background check: FAIL"
	}

	selected := make(map[string]bool, len(state.Selected))
	for _, k := range state.Selected {
		selected[k] = true
	}
	for _, c := range bgcheck.Criteria {
		mark := "[ ]"
		if selected[c.Key] {
			mark = "[x]"
		}
		v.Checklist = append(v.Checklist, fmt.Sprintf("%s %s", mark, c.Label))
	}

	filed := make(map[int]Report, len(state.Reports))
	for _, r := range state.Reports {
		filed[r.Slot] = r
	}
	for slot := 1; slot <= state.SlotCount; slot++ {
		if r, ok := filed[slot]; ok {
			v.Reports = append(v.Reports, fmt.Sprintf("Report %d: filed by %s on %s", slot, r.AuthorID, r.Date))
		} else {
			v.Reports = append(v.Reports, fmt.Sprintf("Report %d: open", slot))
		}
	}

	v.Affordances = affordances(state, selected, filed)
	return v
}

// affordances lists the actions still open, reflecting which slots and
// criteria remain.
func affordances(state RecordState, selected map[string]bool, filed map[int]Report) []string {
	switch state.Status {
	case bgcheck.StatusUnset:
		if len(selected) < len(bgcheck.Criteria) {
			return []string{
				fmt.Sprintf("check criteria (%d of %d done)", len(selected), len(bgcheck.Criteria)),
				"finalize: fail",
			}
		}
		return []string{"finalize: pass", "finalize: fail"}
	case bgcheck.StatusPass:
		var open []string
		for slot := 1; slot <= state.SlotCount; slot++ {
			if _, ok := filed[slot]; !ok {
				open = append(open, fmt.Sprintf("file report %d", slot))
			}
		}
		if len(open) == 0 {
			return []string{"all reports filed - poll open"}
		}
		return open
	default:
		return []string{"closed"}
	}
}

// Render flattens the view into the plain-text message content handed to
// the transport.
func (v View) Render() string {
	var b strings.Builder
	b.WriteString(v.Title)
	b.WriteString("\n")
	if v.Header != "" {
		b.WriteString(v.Header)
		b.WriteString("\n")
	}
	for _, line := range v.Checklist {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, line := range v.Reports {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(v.Affordances) > 0 {
		b.WriteString("-- ")
		b.WriteString(strings.Join(v.Affordances, " | "))
		b.WriteString("\n")
	}
	return b.String()
}
