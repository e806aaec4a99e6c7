package validation_test

import (
	"fmt"
	"testing"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/manosdvd/agency/internal/testhelpers"
	"github.com/manosdvd/agency/internal/validation"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	return validation.New(validation.DefaultThresholds(), testhelpers.NewTestLogger(t))
}

// cleanCase returns a small, fully consistent mystery without suspects that produces no findings at all.
// Every call builds fresh aggregates so tests can mutate them freely.
func cleanCase() (*models.WorldData, *models.CaseData) {
	world := &models.WorldData{
		Characters: []models.Character{
			{
				ID:               "char-01",
				FullName:         "Victor Blackwood",
				Alignment:        models.AlignmentLawfulEvil,
				Honesty:          2,
				VictimLikelihood: 3,
				KillerLikelihood: 8,
				Faction:          "fact-01",
				District:         "dist-01",
				Enemies:          []string{"char-02"},
				Items:            []string{"item-01"},
			},
			{
				ID:               "char-02",
				FullName:         "Eleanor Blackwood",
				Alignment:        models.AlignmentNeutralGood,
				Honesty:          7,
				VictimLikelihood: 8,
				KillerLikelihood: 2,
				District:         "dist-01",
			},
		},
		Locations: []models.Location{
			{
				ID:            "loc-01",
				Name:          "Blackwood Manor",
				District:      "dist-01",
				KeyCharacters: []string{"char-01", "char-02"},
				Clues:         []string{"clue-01"},
			},
			{
				ID:              "loc-02",
				Name:            "The Study",
				District:        "dist-01",
				OwningFaction:   "fact-01",
				KeyCharacters:   []string{"char-01"},
				AssociatedItems: []string{"item-01"},
			},
		},
		Items: []models.Item{
			{
				ID:              "item-01",
				Name:            "Letter Opener",
				PossibleMeans:   true,
				CluePotential:   models.CluePotentialHigh,
				DefaultLocation: "loc-02",
				DefaultOwner:    "char-01",
			},
		},
		Factions: []models.Faction{
			{ID: "fact-01", Name: "The Shadows", Headquarters: "loc-02", Members: []string{"char-01"}},
		},
		Districts: []models.District{
			{ID: "dist-01", Name: "Old Town", DominantFaction: "fact-01", KeyLocations: []string{"loc-01", "loc-02"}},
		},
		Sleuth: &models.Sleuth{ID: "sleuth-01", Name: "Sherlock Holmes", District: "dist-01", Nemesis: "char-01"},
	}

	caseData := &models.CaseData{
		CaseMeta: &models.CaseMeta{
			Victim:          "char-02",
			Culprit:         "char-01",
			CrimeScene:      "loc-01",
			MurderWeapon:    "item-01",
			MeansClue:       "clue-01",
			MotiveClue:      "clue-02",
			OpportunityClue: "clue-03",
			RedHerringClues: []string{"clue-04", "clue-06"},
		},
		Clues: []models.Clue{
			{ClueID: "clue-01", ClueSummary: "Blood on the letter opener", CriticalClue: true,
				DiscoveryPath: []string{"search the study"}, AssociatedItem: "item-01"},
			{ClueID: "clue-02", ClueSummary: "The rewritten will", DiscoveryPath: []string{"read the will"}},
			{ClueID: "clue-03", ClueSummary: "Muddy boots by the door", DiscoveryPath: []string{"search the manor"},
				AssociatedLocation: "loc-01", Dependencies: []string{"clue-01"}},
			{ClueID: "clue-04", ClueSummary: "A stranger seen at the gate", RedHerring: true,
				DebunkingClue: "clue-05", DiscoveryPath: []string{"ask the gardener"}},
			{ClueID: "clue-05", ClueSummary: "The stranger was the postman", DiscoveryPath: []string{"visit the post office"},
				RevealsUnlocks: []models.Unlock{{Type: models.UnlockTypeLocation, ID: "loc-02"}}},
			{ClueID: "clue-06", ClueSummary: "A torn glove", RedHerring: true, DebunkingClue: "clue-05",
				DiscoveryPath: []string{"search the garden"}, AssociatedCharacter: "char-02"},
		},
		CaseLocations: []models.CaseLocation{
			{LocationID: "loc-01", LocationClues: []string{"clue-01"}},
		},
	}

	return world, caseData
}

// withSuspect adds the culprit as an informative suspect.
func withSuspect(caseData *models.CaseData) {
	caseData.KeySuspects = append(caseData.KeySuspects, models.CaseSuspect{
		CharacterID: "char-01",
		Interview: []models.InterviewQuestion{
			{QuestionID: "q-01", Question: "Where were you last night?", Answer: "In the study.", IsClue: true},
		},
	})
}

func fillerClues(from, to int) []models.Clue {
	var clues []models.Clue
	for i := from; i <= to; i++ {
		clues = append(clues, models.Clue{
			ClueID:        fmt.Sprintf("clue-%02d", i),
			ClueSummary:   fmt.Sprintf("Filler clue %d", i),
			DiscoveryPath: []string{"search the manor"},
		})
	}
	return clues
}

// byRule filters fs down to the findings of one rule.
func byRule(fs []findings.Finding, rule findings.Rule) []findings.Finding {
	var matched []findings.Finding
	for _, f := range fs {
		if f.Rule == rule {
			matched = append(matched, f)
		}
	}
	return matched
}

func assetIDs(fs []findings.Finding) []string {
	ids := make([]string, 0, len(fs))
	for _, f := range fs {
		ids = append(ids, f.AssetID)
	}
	return ids
}
