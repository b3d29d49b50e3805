package view

import (
	"strings"
	"testing"

	"github.com/example/vouch/internal/core/bgcheck"
)

func testState() RecordState {
	return RecordState{
		OriginID:      "3f2a",
		Candidate:     "alice",
		RecommenderID: "bob",
		Status:        bgcheck.StatusUnset,
		SlotCount:     3,
	}
}

func TestProject_Unset(t *testing.T) {
	state := testState()
	state.Selected = []string{"identity", "history"}

	v := Project(state)

	if v.Header != "" {
		t.Errorf("expected empty header while unset, got %q", v.Header)
	}
	if len(v.Checklist) != len(bgcheck.Criteria) {
		t.Fatalf("expected %d checklist lines, got %d", len(bgcheck.Criteria), len(v.Checklist))
	}
	if !strings.HasPrefix(v.Checklist[0], "[x]") {
		t.Errorf("expected identity line checked, got %q", v.Checklist[0])
	}
	if !strings.HasPrefix(v.Checklist[2], "[ ]") {
		t.Errorf("expected references line unchecked, got %q", v.Checklist[2])
	}
	if len(v.Reports) != 3 {
		t.Fatalf("expected 3 report lines, got %d", len(v.Reports))
	}
	for _, line := range v.Reports {
		if !strings.HasSuffix(line, "open") {
			t.Errorf("expected open report line, got %q", line)
		}
	}
}

func TestProject_UnsetAffordances(t *testing.T) {
	state := testState()
	state.Selected = []string{"identity"}

	v := Project(state)

	joined := strings.Join(v.Affordances, " | ")
	if !strings.Contains(joined, "1 of 5") {
		t.Errorf("expected checklist progress in affordances, got %q", joined)
	}
	if strings.Contains(joined, "finalize: pass") {
		t.Errorf("pass must not be offered with a partial checklist, got %q", joined)
	}
	if !strings.Contains(joined, "finalize: fail") {
		t.Errorf("fail must always be offered while unset, got %q", joined)
	}
}

func TestProject_FullChecklistOffersPass(t *testing.T) {
	state := testState()
	state.Selected = []string{"identity", "history", "references", "conduct", "activity"}

	v := Project(state)

	joined := strings.Join(v.Affordances, " | ")
	if !strings.Contains(joined, "finalize: pass") {
		t.Errorf("expected pass affordance with full checklist, got %q", joined)
	}
	if !strings.Contains(joined, "finalize: fail") {
		t.Errorf("expected fail affordance with full checklist, got %q", joined)
	}
}

func TestProject_Pass(t *testing.T) {
	state := testState()
	state.Status = bgcheck.StatusPass
	state.Selected = []string{"identity", "history", "references", "conduct", "activity"}
	state.Reports = []Report{
		{Slot: 1, Date: "2026-08-20", AuthorID: "carol", Notes: "helped newcomers"},
	}

	v := Project(state)

	if v.Header != "Background check: PASS" {
		t.Errorf("unexpected header: %q", v.Header)
	}
	if !strings.Contains(v.Reports[0], "filed by carol") {
		t.Errorf("expected slot 1 filed by carol, got %q", v.Reports[0])
	}
	joined := strings.Join(v.Affordances, " | ")
	if !strings.Contains(joined, "file report 2") || !strings.Contains(joined, "file report 3") {
		t.Errorf("expected open slot affordances, got %q", joined)
	}
	if strings.Contains(joined, "file report 1") {
		t.Errorf("filed slot must not be offered, got %q", joined)
	}
}

func TestProject_AllReportsFiled(t *testing.T) {
	state := testState()
	state.Status = bgcheck.StatusPass
	state.Reports = []Report{
		{Slot: 1, Date: "2026-08-20", AuthorID: "carol"},
		{Slot: 2, Date: "2026-08-21", AuthorID: "dave"},
		{Slot: 3, Date: "2026-08-22", AuthorID: "erin"},
	}

	v := Project(state)

	joined := strings.Join(v.Affordances, " | ")
	if !strings.Contains(joined, "poll open") {
		t.Errorf("expected poll-open affordance, got %q", joined)
	}
}

func TestProject_Fail(t *testing.T) {
	state := testState()
	state.Status = bgcheck.StatusFail

	v := Project(state)

	if v.Header != "Background check: FAIL" {
		t.Errorf("unexpected header: %q", v.Header)
	}
	joined := strings.Join(v.Affordances, " | ")
	if joined != "closed" {
		t.Errorf("expected closed affordance only, got %q", joined)
	}
}

func TestRender(t *testing.T) {
	state := testState()
	state.Status = bgcheck.StatusPass

	content := Project(state).Render()

	if !strings.Contains(content, "Candidate recommendation: alice (by bob)") {
		t.Errorf("expected title line, got:\n%s", content)
	}
	if !strings.Contains(content, "Background check: PASS") {
		t.Errorf("expected header line, got:\n%s", content)
	}
	if !strings.Contains(content, "-- ") {
		t.Errorf("expected affordance line, got:\n%s", content)
	}
	if strings.Count(content, "Report ") < 3 {
		t.Errorf("expected one line per slot, got:\n%s", content)
	}
}

// The same state always projects to the same content; broadcast relies on
// this to apply one render to every surface.
func TestProject_Deterministic(t *testing.T) {
	state := testState()
	state.Selected = []string{"identity", "conduct"}

	first := Project(state).Render()
	second := Project(state).Render()

	if first != second {
		t.Errorf("projection not deterministic:\n%s\nvs\n%s", first, second)
	}
}
