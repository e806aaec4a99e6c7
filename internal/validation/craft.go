package validation

import (
	"fmt"
	"slices"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
)

func checkDeadEndLocations(r *run) {
	for _, cl := range r.caseData.CaseLocations {
		if len(cl.LocationClues) == 0 && len(cl.Witnesses) == 0 {
			r.report.Warn(findings.RuleDeadEndLocation, findings.AssetCaseLocation, cl.LocationID, "",
				fmt.Sprintf("Dead End: case location '%s' has neither clues nor witnesses.", cl.LocationID))
		}
	}
}

func checkDeadEndSuspects(r *run) {
	for _, suspect := range r.caseData.KeySuspects {
		name := r.characterLabel(suspect.CharacterID)
		if len(suspect.Interview) == 0 {
			r.report.Warn(findings.RuleDeadEndSuspect, findings.AssetCaseSuspect, suspect.CharacterID, "interview",
				fmt.Sprintf("Dead End: suspect %s has no interview questions.", name))
			continue
		}
		informative := slices.ContainsFunc(suspect.Interview, func(q models.InterviewQuestion) bool {
			return q.IsClue || q.IsLie
		})
		if !informative {
			r.report.Warn(findings.RuleUninformativeSuspect, findings.AssetCaseSuspect, suspect.CharacterID, "interview",
				fmt.Sprintf("Uninformative Suspect: interviewing %s reveals no clue and no lie.", name))
		}
	}
}

// checkCoreMystery requires the case meta. Every rule that reads the meta skips the run when it is missing.
func checkCoreMystery(r *run) {
	meta := r.caseData.CaseMeta
	if meta == nil {
		r.report.Error(findings.RuleCoreMysteryUndefined, findings.AssetCaseMeta, "", "",
			"Core Mystery Not Defined: choose the victim, culprit, crime scene and murder weapon.")
		return
	}

	for _, core := range []struct {
		field, label, clueID string
	}{
		{field: "meansClue", label: "means", clueID: meta.MeansClue},
		{field: "motiveClue", label: "motive", clueID: meta.MotiveClue},
		{field: "opportunityClue", label: "opportunity", clueID: meta.OpportunityClue},
	} {
		if core.clueID == "" {
			r.report.Warn(findings.RuleMissingCoreClue, findings.AssetCaseMeta, "", core.field,
				fmt.Sprintf("Missing Core Clue: no clue establishes the culprit's %s.", core.label))
		}
	}
}

// checkWeaponAccess is a heuristic: the culprit could reach the weapon by other means than being a key character
// where it is kept.
func checkWeaponAccess(r *run) {
	meta := r.caseData.CaseMeta
	if meta == nil {
		return
	}
	culprit, ok := r.idx.Character(meta.Culprit)
	if !ok {
		return
	}
	weapon, ok := r.idx.Item(meta.MurderWeapon)
	if !ok {
		return
	}
	kept, ok := r.idx.Location(weapon.DefaultLocation)
	if !ok || slices.Contains(kept.KeyCharacters, culprit.ID) {
		return
	}
	r.report.Warn(findings.RuleWeaponAccess, findings.AssetCaseMeta, "", "murderWeapon",
		fmt.Sprintf("Weapon Access: culprit %s is not a key character at %s, where the %s is kept.",
			r.characterLabel(culprit.ID), kept.Name, weapon.Name))
}

func checkCrimeSceneAccess(r *run) {
	meta := r.caseData.CaseMeta
	if meta == nil {
		return
	}
	culprit, ok := r.idx.Character(meta.Culprit)
	if !ok {
		return
	}
	scene, ok := r.idx.Location(meta.CrimeScene)
	if !ok || slices.Contains(scene.KeyCharacters, culprit.ID) {
		return
	}
	r.report.Warn(findings.RuleCrimeSceneAccess, findings.AssetCaseMeta, "", "crimeScene",
		fmt.Sprintf("Crime Scene Access: culprit %s is not a key character at the crime scene %s.",
			r.characterLabel(culprit.ID), scene.Name))
}

// checkUnsolvableRedHerrings is an error rather than a warning: a red herring nobody can debunk breaks the
// fairness of the mystery.
func checkUnsolvableRedHerrings(r *run) {
	for _, clue := range r.caseData.Clues {
		if clue.RedHerring && clue.DebunkingClue == "" {
			r.report.Error(findings.RuleUnsolvableRedHerring, findings.AssetClue, clue.ClueID, "debunkingClue",
				fmt.Sprintf("Unsolvable Red Herring: '%s' misleads the player but no clue debunks it.", clue.ClueID))
		}
	}
}

// checkRedHerringCount counts clues flagged as red herrings together with the ones the case meta lists. A case
// without any clues is not judged yet.
func checkRedHerringCount(r *run) {
	if len(r.caseData.Clues) == 0 {
		return
	}
	herrings := map[string]struct{}{}
	for i, clue := range r.caseData.Clues {
		if !clue.RedHerring {
			continue
		}
		key := clue.ClueID
		if key == "" {
			key = fmt.Sprintf("#%d", i)
		}
		herrings[key] = struct{}{}
	}
	if meta := r.caseData.CaseMeta; meta != nil {
		for _, id := range meta.RedHerringClues {
			if r.idx.Clues.Has(id) {
				herrings[id] = struct{}{}
			}
		}
	}

	if len(herrings) < r.thresholds.MinRedHerrings {
		r.report.Warn(findings.RuleTooFewRedHerrings, findings.AssetCase, "", "",
			fmt.Sprintf("Too Few Red Herrings: the case has %d, at least %d keep the solution from being obvious.",
				len(herrings), r.thresholds.MinRedHerrings))
	}
}

// checkSuspectPlausibility wants every suspect tied to the crime: the victim is an ally or enemy, they share the
// crime scene's district, or they carry the murder weapon.
func checkSuspectPlausibility(r *run) {
	meta := r.caseData.CaseMeta
	if meta == nil {
		return
	}
	var sceneDistrict string
	if scene, ok := r.idx.Location(meta.CrimeScene); ok {
		sceneDistrict = scene.District
	}

	for _, suspect := range r.caseData.KeySuspects {
		ch, ok := r.idx.Character(suspect.CharacterID)
		if !ok {
			continue
		}
		knowsVictim := meta.Victim != "" &&
			(slices.Contains(ch.Allies, meta.Victim) || slices.Contains(ch.Enemies, meta.Victim))
		nearScene := ch.District != "" && ch.District == sceneDistrict
		hasWeapon := meta.MurderWeapon != "" && slices.Contains(ch.Items, meta.MurderWeapon)
		if knowsVictim || nearScene || hasWeapon {
			continue
		}
		r.report.Warn(findings.RuleImplausibleSuspect, findings.AssetCaseSuspect, suspect.CharacterID, "",
			fmt.Sprintf("Implausible Suspect: %s has no tie to the victim, the crime scene's district or the weapon.",
				r.characterLabel(suspect.CharacterID)))
	}
}
