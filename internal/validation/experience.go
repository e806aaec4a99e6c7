package validation

import (
	"fmt"

	"github.com/manosdvd/agency/internal/findings"
)

func checkCognitiveLoad(r *run) {
	if n := len(r.caseData.Clues); n > r.thresholds.MaxClues {
		r.report.Warn(findings.RuleTooManyClues, findings.AssetCase, "", "clues",
			fmt.Sprintf("Cognitive Overload: %d clues is more than the %d players can comfortably track.",
				n, r.thresholds.MaxClues))
	}
	if n := len(r.caseData.KeySuspects); n > r.thresholds.MaxSuspects {
		r.report.Warn(findings.RuleTooManySuspects, findings.AssetCase, "", "keySuspects",
			fmt.Sprintf("Cognitive Overload: %d suspects is more than the %d players can comfortably track.",
				n, r.thresholds.MaxSuspects))
	}
}

// checkDeductionPath only reminds the author to check the deduction by hand once everything else is clean.
// It does not prove that the clues actually imply the culprit.
func checkDeductionPath(r *run) {
	if len(r.caseData.Clues) == 0 || len(r.caseData.KeySuspects) == 0 || r.report.HasErrors() {
		return
	}
	r.report.Warn(findings.RuleVerifyDeductionPath, findings.AssetCase, "", "",
		"Verify Aha! Moment: make sure the clues lead to one clear deduction of the culprit.")
}
