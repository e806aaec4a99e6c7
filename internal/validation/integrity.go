package validation

import (
	"fmt"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/manosdvd/agency/internal/refindex"
)

// checkIdentifiers enforces that every primary key is present and unique across all entity kinds, since the
// authoring tool addresses assets by id alone. The first holder of an id is not flagged.
func checkIdentifiers(r *run) {
	seen := map[string]struct{}{}
	claim := func(assetType findings.AssetType, position int, field, id string) {
		if id == "" {
			r.report.Error(findings.RuleMissingIdentifier, assetType, "", field,
				fmt.Sprintf("Missing Identifier: %s #%d has no %s.", assetType, position+1, field))
			return
		}
		if _, dup := seen[id]; dup {
			r.report.Error(findings.RuleDuplicateID, assetType, id, field,
				fmt.Sprintf("Duplicate ID: %s '%s' reuses an id that is already taken.", assetType, id))
			return
		}
		seen[id] = struct{}{}
	}

	w := r.world
	for i, ch := range w.Characters {
		claim(findings.AssetCharacter, i, "id", ch.ID)
	}
	for i, loc := range w.Locations {
		claim(findings.AssetLocation, i, "id", loc.ID)
	}
	for i, item := range w.Items {
		claim(findings.AssetItem, i, "id", item.ID)
	}
	for i, f := range w.Factions {
		claim(findings.AssetFaction, i, "id", f.ID)
	}
	for i, d := range w.Districts {
		claim(findings.AssetDistrict, i, "id", d.ID)
	}
	if w.Sleuth != nil {
		claim(findings.AssetSleuth, 0, "id", w.Sleuth.ID)
	}
	for i, clue := range r.caseData.Clues {
		claim(findings.AssetClue, i, "clueId", clue.ClueID)
	}

	// Suspects and case locations are keyed by the world entity they wrap, so they only need to be unique
	// within their own list.
	suspects := map[string]struct{}{}
	for _, suspect := range r.caseData.KeySuspects {
		if _, dup := suspects[suspect.CharacterID]; dup && suspect.CharacterID != "" {
			r.report.Error(findings.RuleDuplicateID, findings.AssetCaseSuspect, suspect.CharacterID, "characterId",
				fmt.Sprintf("Duplicate ID: character '%s' is listed as a suspect more than once.", suspect.CharacterID))
		}
		suspects[suspect.CharacterID] = struct{}{}
	}
	caseLocations := map[string]struct{}{}
	for _, cl := range r.caseData.CaseLocations {
		if _, dup := caseLocations[cl.LocationID]; dup && cl.LocationID != "" {
			r.report.Error(findings.RuleDuplicateID, findings.AssetCaseLocation, cl.LocationID, "locationId",
				fmt.Sprintf("Duplicate ID: location '%s' is added to the case more than once.", cl.LocationID))
		}
		caseLocations[cl.LocationID] = struct{}{}
	}
}

// refChecker reports dangling references held by one asset.
type refChecker struct {
	r         *run
	assetType findings.AssetType
	assetID   string
}

func (r *run) refs(assetType findings.AssetType, assetID string) refChecker {
	return refChecker{r: r, assetType: assetType, assetID: assetID}
}

// one checks a single-valued reference field. Empty fields are optional and pass.
func (c refChecker) one(field string, target findings.AssetType, valid refindex.Set, id string) {
	if id == "" || valid.Has(id) {
		return
	}
	owner := string(c.assetType)
	if c.assetID != "" {
		owner = fmt.Sprintf("%s '%s'", c.assetType, c.assetID)
	}
	c.r.report.Error(findings.RuleInvalidReference, c.assetType, c.assetID, field,
		fmt.Sprintf("Invalid Reference: %s field '%s' points to unknown %s '%s'.", owner, field, target, id))
}

// many checks a list-valued reference field element by element.
func (c refChecker) many(field string, target findings.AssetType, valid refindex.Set, ids []string) {
	for _, id := range ids {
		c.one(field, target, valid, id)
	}
}

// checkReferences confirms that every id-valued field points at an existing entity of the right kind.
//
// Unlocks of type interview_question are not checked: questions live nested inside suspects and witnesses and
// have no flattened index, so there is nothing to resolve them against.
func checkReferences(r *run) {
	idx := r.idx
	w := r.world

	for _, ch := range w.Characters {
		c := r.refs(findings.AssetCharacter, ch.ID)
		c.one("faction", findings.AssetFaction, idx.Factions, ch.Faction)
		c.one("district", findings.AssetDistrict, idx.Districts, ch.District)
		c.many("allies", findings.AssetCharacter, idx.Characters, ch.Allies)
		c.many("enemies", findings.AssetCharacter, idx.Characters, ch.Enemies)
		c.many("items", findings.AssetItem, idx.Items, ch.Items)
	}
	for _, loc := range w.Locations {
		c := r.refs(findings.AssetLocation, loc.ID)
		c.one("district", findings.AssetDistrict, idx.Districts, loc.District)
		c.one("owningFaction", findings.AssetFaction, idx.Factions, loc.OwningFaction)
		c.many("keyCharacters", findings.AssetCharacter, idx.Characters, loc.KeyCharacters)
		c.many("associatedItems", findings.AssetItem, idx.Items, loc.AssociatedItems)
		c.many("clues", findings.AssetClue, idx.Clues, loc.Clues)
	}
	for _, item := range w.Items {
		c := r.refs(findings.AssetItem, item.ID)
		c.one("defaultLocation", findings.AssetLocation, idx.Locations, item.DefaultLocation)
		c.one("defaultOwner", findings.AssetCharacter, idx.Characters, item.DefaultOwner)
	}
	for _, f := range w.Factions {
		c := r.refs(findings.AssetFaction, f.ID)
		c.one("headquarters", findings.AssetLocation, idx.Locations, f.Headquarters)
		c.many("members", findings.AssetCharacter, idx.Characters, f.Members)
		c.many("allyFactions", findings.AssetFaction, idx.Factions, f.AllyFactions)
		c.many("enemyFactions", findings.AssetFaction, idx.Factions, f.EnemyFactions)
	}
	for _, d := range w.Districts {
		c := r.refs(findings.AssetDistrict, d.ID)
		c.one("dominantFaction", findings.AssetFaction, idx.Factions, d.DominantFaction)
		c.many("keyLocations", findings.AssetLocation, idx.Locations, d.KeyLocations)
	}
	if s := w.Sleuth; s != nil {
		c := r.refs(findings.AssetSleuth, s.ID)
		c.one("district", findings.AssetDistrict, idx.Districts, s.District)
		c.one("nemesis", findings.AssetCharacter, idx.Characters, s.Nemesis)
	}

	for _, clue := range r.caseData.Clues {
		c := r.refs(findings.AssetClue, clue.ClueID)
		c.many("dependencies", findings.AssetClue, idx.Clues, clue.Dependencies)
		c.one("debunkingClue", findings.AssetClue, idx.Clues, clue.DebunkingClue)
		c.one("associatedItem", findings.AssetItem, idx.Items, clue.AssociatedItem)
		c.one("associatedLocation", findings.AssetLocation, idx.Locations, clue.AssociatedLocation)
		c.one("associatedCharacter", findings.AssetCharacter, idx.Characters, clue.AssociatedCharacter)
		for _, unlock := range clue.RevealsUnlocks {
			if unlock.Type == models.UnlockTypeLocation {
				c.one("revealsUnlocks", findings.AssetLocation, idx.Locations, unlock.ID)
			}
		}
	}

	if meta := r.caseData.CaseMeta; meta != nil {
		c := r.refs(findings.AssetCaseMeta, "")
		c.one("victim", findings.AssetCharacter, idx.Characters, meta.Victim)
		c.one("culprit", findings.AssetCharacter, idx.Characters, meta.Culprit)
		c.one("crimeScene", findings.AssetLocation, idx.Locations, meta.CrimeScene)
		c.one("murderWeapon", findings.AssetItem, idx.Items, meta.MurderWeapon)
		c.one("meansClue", findings.AssetClue, idx.Clues, meta.MeansClue)
		c.one("motiveClue", findings.AssetClue, idx.Clues, meta.MotiveClue)
		c.one("opportunityClue", findings.AssetClue, idx.Clues, meta.OpportunityClue)
		c.many("redHerringClues", findings.AssetClue, idx.Clues, meta.RedHerringClues)
	}

	for _, suspect := range r.caseData.KeySuspects {
		r.refs(findings.AssetCaseSuspect, suspect.CharacterID).
			one("characterId", findings.AssetCharacter, idx.Characters, suspect.CharacterID)
		r.checkInterviewReferences(suspect.Interview)
	}

	for _, cl := range r.caseData.CaseLocations {
		c := r.refs(findings.AssetCaseLocation, cl.LocationID)
		c.one("locationId", findings.AssetLocation, idx.Locations, cl.LocationID)
		c.many("locationClues", findings.AssetClue, idx.Clues, cl.LocationClues)
		for _, witness := range cl.Witnesses {
			r.refs(findings.AssetCaseWitness, witness.CharacterID).
				one("characterId", findings.AssetCharacter, idx.Characters, witness.CharacterID)
			r.checkInterviewReferences(witness.Interview)
		}
	}
}

func (r *run) checkInterviewReferences(interview []models.InterviewQuestion) {
	for _, q := range interview {
		c := r.refs(findings.AssetInterviewQuestion, q.QuestionID)
		c.one("debunkingClue", findings.AssetClue, r.idx.Clues, q.DebunkingClue)
		c.one("hasItem", findings.AssetItem, r.idx.Items, q.HasItem)
	}
}
