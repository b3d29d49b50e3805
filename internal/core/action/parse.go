package action

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/vouch/internal/core/bgcheck"
)

// Parse converts a transport custom ID of the shape "stage.verb:id[:extra]"
// into a typed action. Only the button-style actions travel as custom IDs;
// payload-bearing submits (recommendation drafts, report content) are built
// directly by the transport binding from its dialog input.
func Parse(customID string) (Action, error) {
	head, rest, _ := strings.Cut(customID, ":")

	switch head {
	case "recommend.continue", "recommend.cancel", "recommend.submit",
		"bgcheck.start", "bgcheck.cancel":
		if rest == "" {
			return nil, fmt.Errorf("malformed action: %s missing identifier", head)
		}
		switch head {
		case "recommend.continue":
			return RecommendContinue{Token: rest}, nil
		case "recommend.cancel":
			return RecommendCancel{Token: rest}, nil
		case "recommend.submit":
			return RecommendSubmit{Token: rest}, nil
		case "bgcheck.start":
			return CheckStart{OriginID: rest}, nil
		default:
			return CheckCancel{OriginID: rest}, nil
		}
	case "bgcheck.finalize":
		verdict, origin, ok := strings.Cut(rest, ":")
		if !ok || origin == "" {
			return nil, fmt.Errorf("malformed action %q: want bgcheck.finalize:<verdict>:<origin>", customID)
		}
		switch bgcheck.Verdict(verdict) {
		case bgcheck.VerdictPass, bgcheck.VerdictFail:
			return CheckFinalize{OriginID: origin, Verdict: bgcheck.Verdict(verdict)}, nil
		}
		return nil, fmt.Errorf("malformed action %q: unknown verdict %q", customID, verdict)
	case "observation.start":
		slot, origin, err := slotAndOrigin(customID, rest)
		if err != nil {
			return nil, err
		}
		return ReportStart{OriginID: origin, Slot: slot}, nil
	case "observation.view":
		slot, origin, err := slotAndOrigin(customID, rest)
		if err != nil {
			return nil, err
		}
		return ReportView{OriginID: origin, Slot: slot}, nil
	}

	return nil, fmt.Errorf("unknown action %q", customID)
}

func slotAndOrigin(customID, rest string) (int, string, error) {
	slotStr, origin, ok := strings.Cut(rest, ":")
	if !ok || origin == "" {
		return 0, "", fmt.Errorf("malformed action %q: want <stage>.<verb>:<slot>:<origin>", customID)
	}
	slot, err := strconv.Atoi(slotStr)
	if err != nil {
		return 0, "", fmt.Errorf("malformed action %q: slot %q is not a number", customID, slotStr)
	}
	return slot, origin, nil
}
