package validation

import (
	"fmt"
	"strings"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
)

// interviews calls fn for every interview question in the case, suspects first, then the witnesses of each case
// location in order.
func (r *run) interviews(fn func(speaker string, q models.InterviewQuestion)) {
	for _, suspect := range r.caseData.KeySuspects {
		for _, q := range suspect.Interview {
			fn(suspect.CharacterID, q)
		}
	}
	for _, cl := range r.caseData.CaseLocations {
		for _, witness := range cl.Witnesses {
			for _, q := range witness.Interview {
				fn(witness.CharacterID, q)
			}
		}
	}
}

// checkOrphanedClues reports clues the player can never reach: no discovery path, not the debunker of any
// interview answer, and not unlocked by another clue.
func checkOrphanedClues(r *run) {
	debunkers := map[string]struct{}{}
	r.interviews(func(_ string, q models.InterviewQuestion) {
		if q.DebunkingClue != "" {
			debunkers[q.DebunkingClue] = struct{}{}
		}
	})

	// unlockedBy maps an unlocked id to the clues that reveal it.
	unlockedBy := map[string][]string{}
	for _, clue := range r.caseData.Clues {
		for _, unlock := range clue.RevealsUnlocks {
			unlockedBy[unlock.ID] = append(unlockedBy[unlock.ID], clue.ClueID)
		}
	}
	unlockedByOther := func(id string) bool {
		for _, revealer := range unlockedBy[id] {
			if revealer != id {
				return true
			}
		}
		return false
	}

	for _, clue := range r.caseData.Clues {
		if len(clue.DiscoveryPath) > 0 {
			continue
		}
		if _, ok := debunkers[clue.ClueID]; ok {
			continue
		}
		if unlockedByOther(clue.ClueID) {
			continue
		}
		r.report.Error(findings.RuleOrphanedClue, findings.AssetClue, clue.ClueID, "discoveryPath",
			fmt.Sprintf("Orphaned Clue: '%s' has no discovery path and nothing in the case reveals it.", clue.ClueID))
	}
}

// checkUndebunkableLies reports lies the player has no way to expose.
func checkUndebunkableLies(r *run) {
	r.interviews(func(speaker string, q models.InterviewQuestion) {
		if !q.IsLie || q.DebunkingClue != "" {
			return
		}
		r.report.Error(findings.RuleUndebunkableLie, findings.AssetInterviewQuestion, q.QuestionID, "debunkingClue",
			fmt.Sprintf("Undebunkable Lie: %s lies in answer to %q but no clue debunks it.",
				r.characterLabel(speaker), q.Question))
	})
}

// checkCircularDependencies reports every clue whose prerequisite chain loops. Each clue is walked on its own,
// so every clue on a cycle, and every clue leading into one, reports it independently.
func checkCircularDependencies(r *run) {
	deps := map[string][]string{}
	for _, clue := range r.caseData.Clues {
		if _, seen := deps[clue.ClueID]; !seen && clue.ClueID != "" {
			deps[clue.ClueID] = clue.Dependencies
		}
	}

	for _, clue := range r.caseData.Clues {
		if clue.ClueID == "" {
			continue
		}
		cycle := findCycle(clue.ClueID, deps)
		if cycle == nil {
			continue
		}
		r.report.Error(findings.RuleCircularDependency, findings.AssetClue, clue.ClueID, "dependencies",
			fmt.Sprintf("Circular Dependency: the prerequisites of '%s' loop back at '%s' (%s).",
				clue.ClueID, cycle[0], strings.Join(cycle, " -> ")))
	}
}

// findCycle walks the dependency edges depth first from start and returns the first cycle found, beginning and
// ending with the id that closed it. Unknown ids are dead ends; dangling references are reported elsewhere.
//
// An id is on the active path while its prerequisites are being explored. Ids already fully explored are
// skipped, so shared prerequisites (diamonds) are neither flagged nor walked twice.
func findCycle(start string, deps map[string][]string) []string {
	var (
		path     []string
		onPath   = map[string]int{}
		explored = map[string]bool{}
		walk     func(id string) []string
	)
	walk = func(id string) []string {
		if at, ok := onPath[id]; ok {
			cycle := append([]string{}, path[at:]...)
			return append(cycle, id)
		}
		if explored[id] {
			return nil
		}
		onPath[id] = len(path)
		path = append(path, id)
		for _, dep := range deps[id] {
			if _, known := deps[dep]; !known {
				continue
			}
			if cycle := walk(dep); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		delete(onPath, id)
		explored[id] = true
		return nil
	}
	return walk(start)
}
