package bgcheck

import (
	"reflect"
	"testing"
)

func TestCanStart(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		wantAllowed bool
	}{
		{
			name:        "unset check can be started",
			status:      StatusUnset,
			wantAllowed: true,
		},
		{
			name:        "passed check is terminal",
			status:      StatusPass,
			wantAllowed: false,
		},
		{
			name:        "failed check is terminal",
			status:      StatusFail,
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStart(tt.status)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStart() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}

			// Test Error() method
			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("CanStart().Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("CanStart().Error() = nil, want error")
			}
		})
	}
}

func TestCanUpdateSelection(t *testing.T) {
	if result := CanUpdateSelection(StatusUnset); !result.Allowed {
		t.Errorf("CanUpdateSelection(unset) Allowed = false, want true")
	}
	if result := CanUpdateSelection(StatusPass); result.Allowed {
		t.Error("CanUpdateSelection(pass) Allowed = true, want false")
	}
	if result := CanUpdateSelection(StatusFail); result.Allowed {
		t.Error("CanUpdateSelection(fail) Allowed = true, want false")
	}
}

func TestCanFinalize(t *testing.T) {
	tests := []struct {
		name          string
		status        Status
		verdict       Verdict
		selectedCount int
		wantAllowed   bool
	}{
		{
			name:          "pass with complete checklist",
			status:        StatusUnset,
			verdict:       VerdictPass,
			selectedCount: len(Criteria),
			wantAllowed:   true,
		},
		{
			name:          "pass with partial checklist is refused",
			status:        StatusUnset,
			verdict:       VerdictPass,
			selectedCount: 3,
			wantAllowed:   false,
		},
		{
			name:          "pass with empty checklist is refused",
			status:        StatusUnset,
			verdict:       VerdictPass,
			selectedCount: 0,
			wantAllowed:   false,
		},
		{
			name:          "fail with partial checklist is allowed",
			status:        StatusUnset,
			verdict:       VerdictFail,
			selectedCount: 2,
			wantAllowed:   true,
		},
		{
			name:          "fail with empty checklist is allowed",
			status:        StatusUnset,
			verdict:       VerdictFail,
			selectedCount: 0,
			wantAllowed:   true,
		},
		{
			name:          "already passed is terminal",
			status:        StatusPass,
			verdict:       VerdictFail,
			selectedCount: len(Criteria),
			wantAllowed:   false,
		},
		{
			name:          "already failed is terminal",
			status:        StatusFail,
			verdict:       VerdictPass,
			selectedCount: len(Criteria),
			wantAllowed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanFinalize(tt.status, tt.verdict, tt.selectedCount)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanFinalize() Allowed = %v, want %v (reason: %s)", result.Allowed, tt.wantAllowed, result.Reason)
			}
		})
	}
}

func TestVerdictStatus(t *testing.T) {
	if got := VerdictPass.Status(); got != StatusPass {
		t.Errorf("VerdictPass.Status() = %v, want %v", got, StatusPass)
	}
	if got := VerdictFail.Status(); got != StatusFail {
		t.Errorf("VerdictFail.Status() = %v, want %v", got, StatusFail)
	}
}

func TestNormalizeSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "valid keys pass through in order",
			keys: []string{"identity", "history"},
			want: []string{"identity", "history"},
		},
		{
			name: "unknown keys are dropped",
			keys: []string{"identity", "bogus", "history"},
			want: []string{"identity", "history"},
		},
		{
			name: "duplicates are dropped",
			keys: []string{"identity", "identity", "conduct"},
			want: []string{"identity", "conduct"},
		},
		{
			name: "empty selection stays empty",
			keys: nil,
			want: nil,
		},
		{
			name: "all criteria survive",
			keys: []string{"identity", "history", "references", "conduct", "activity"},
			want: []string{"identity", "history", "references", "conduct", "activity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSelection(tt.keys)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeSelection(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestValidKey(t *testing.T) {
	for _, c := range Criteria {
		if !ValidKey(c.Key) {
			t.Errorf("ValidKey(%q) = false, want true", c.Key)
		}
	}
	if ValidKey("bogus") {
		t.Error("ValidKey(\"bogus\") = true, want false")
	}
	if ValidKey("") {
		t.Error("ValidKey(\"\") = true, want false")
	}
}
