package validation_test

import (
	"testing"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/stretchr/testify/require"
)

func TestValidate_invalidCharacterFaction(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	world.Characters[0].Faction = "fact-404"

	report := newValidator(t).Validate(world, caseData)

	require.Len(t, report.Errors, 1)
	got := report.Errors[0]
	require.Equal(t, findings.RuleInvalidReference, got.Rule)
	require.Equal(t, findings.AssetCharacter, got.AssetType)
	require.Equal(t, "faction", got.FieldName)
	require.Equal(t, "char-01", got.AssetID)
	require.Contains(t, got.Message, "fact-404")
}

func TestValidate_invalidReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(w *models.WorldData, c *models.CaseData)
		wantAssetType findings.AssetType
		wantAssetID   string
		wantField     string
	}{
		{
			name:          "character ally",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Characters[1].Allies = []string{"char-99"} },
			wantAssetType: findings.AssetCharacter, wantAssetID: "char-02", wantField: "allies",
		},
		{
			name:          "location key character",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Locations[1].KeyCharacters = append(w.Locations[1].KeyCharacters, "char-99") },
			wantAssetType: findings.AssetLocation, wantAssetID: "loc-02", wantField: "keyCharacters",
		},
		{
			name:          "location clue",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Locations[0].Clues = []string{"clue-99"} },
			wantAssetType: findings.AssetLocation, wantAssetID: "loc-01", wantField: "clues",
		},
		{
			name:          "item owner",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Items[0].DefaultOwner = "char-99" },
			wantAssetType: findings.AssetItem, wantAssetID: "item-01", wantField: "defaultOwner",
		},
		{
			name:          "faction enemy",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Factions[0].EnemyFactions = []string{"fact-99"} },
			wantAssetType: findings.AssetFaction, wantAssetID: "fact-01", wantField: "enemyFactions",
		},
		{
			name:          "district key location",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Districts[0].KeyLocations = []string{"loc-99"} },
			wantAssetType: findings.AssetDistrict, wantAssetID: "dist-01", wantField: "keyLocations",
		},
		{
			name:          "sleuth nemesis",
			mutate:        func(w *models.WorldData, _ *models.CaseData) { w.Sleuth.Nemesis = "char-99" },
			wantAssetType: findings.AssetSleuth, wantAssetID: "sleuth-01", wantField: "nemesis",
		},
		{
			name:          "clue associated character",
			mutate:        func(_ *models.WorldData, c *models.CaseData) { c.Clues[1].AssociatedCharacter = "char-99" },
			wantAssetType: findings.AssetClue, wantAssetID: "clue-02", wantField: "associatedCharacter",
		},
		{
			name: "clue unlocks unknown location",
			mutate: func(_ *models.WorldData, c *models.CaseData) {
				c.Clues[4].RevealsUnlocks = []models.Unlock{{Type: models.UnlockTypeLocation, ID: "loc-99"}}
			},
			wantAssetType: findings.AssetClue, wantAssetID: "clue-05", wantField: "revealsUnlocks",
		},
		{
			name:          "case meta weapon",
			mutate:        func(_ *models.WorldData, c *models.CaseData) { c.CaseMeta.MurderWeapon = "item-99" },
			wantAssetType: findings.AssetCaseMeta, wantAssetID: "", wantField: "murderWeapon",
		},
		{
			name:          "case location",
			mutate:        func(_ *models.WorldData, c *models.CaseData) { c.CaseLocations[0].LocationID = "loc-99" },
			wantAssetType: findings.AssetCaseLocation, wantAssetID: "loc-99", wantField: "locationId",
		},
		{
			name: "witness character",
			mutate: func(_ *models.WorldData, c *models.CaseData) {
				c.CaseLocations[0].Witnesses = []models.CaseWitness{{CharacterID: "char-99"}}
			},
			wantAssetType: findings.AssetCaseWitness, wantAssetID: "char-99", wantField: "characterId",
		},
		{
			name: "interview item",
			mutate: func(_ *models.WorldData, c *models.CaseData) {
				withSuspect(c)
				c.KeySuspects[0].Interview[0].HasItem = "item-99"
			},
			wantAssetType: findings.AssetInterviewQuestion, wantAssetID: "q-01", wantField: "hasItem",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, caseData := cleanCase()
			tt.mutate(world, caseData)

			report := newValidator(t).Validate(world, caseData)

			invalid := byRule(report.Errors, findings.RuleInvalidReference)
			require.Len(t, invalid, 1)
			require.Equal(t, tt.wantAssetType, invalid[0].AssetType)
			require.Equal(t, tt.wantAssetID, invalid[0].AssetID)
			require.Equal(t, tt.wantField, invalid[0].FieldName)
			require.Equal(t, findings.SeverityError, invalid[0].Severity)
		})
	}
}

func TestValidate_listReferencesCheckedElementWise(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	world.Characters[0].Items = []string{"item-01", "item-98", "item-99"}

	report := newValidator(t).Validate(world, caseData)

	invalid := byRule(report.Errors, findings.RuleInvalidReference)
	require.Len(t, invalid, 2)
	require.Contains(t, invalid[0].Message, "item-98")
	require.Contains(t, invalid[1].Message, "item-99")
}

func TestValidate_interviewQuestionUnlocksAreNotChecked(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	caseData.Clues[4].RevealsUnlocks = append(caseData.Clues[4].RevealsUnlocks,
		models.Unlock{Type: models.UnlockTypeInterviewQuestion, ID: "q-404"})

	report := newValidator(t).Validate(world, caseData)

	require.Empty(t, report.Errors)
}

func TestValidate_duplicateIDs(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	// The same id in different kinds collides because ids share one namespace.
	world.Locations = append(world.Locations, models.Location{ID: "char-01", Name: "Shadow copy"})
	caseData.Clues = append(caseData.Clues,
		models.Clue{ClueID: "clue-01", DiscoveryPath: []string{"again"}},
		models.Clue{ClueID: "clue-01", DiscoveryPath: []string{"and again"}},
	)

	report := newValidator(t).Validate(world, caseData)

	dups := byRule(report.Errors, findings.RuleDuplicateID)
	require.Len(t, dups, 3)
	require.Equal(t, findings.AssetLocation, dups[0].AssetType)
	require.Equal(t, "char-01", dups[0].AssetID)
	require.Equal(t, findings.AssetClue, dups[1].AssetType)
	require.Equal(t, "clueId", dups[1].FieldName)
	require.Equal(t, findings.AssetClue, dups[2].AssetType)
}

func TestValidate_duplicateCaseEntries(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	withSuspect(caseData)
	withSuspect(caseData)
	caseData.CaseLocations = append(caseData.CaseLocations, caseData.CaseLocations[0])

	report := newValidator(t).Validate(world, caseData)

	dups := byRule(report.Errors, findings.RuleDuplicateID)
	require.Len(t, dups, 2)
	require.Equal(t, findings.AssetCaseSuspect, dups[0].AssetType)
	require.Equal(t, findings.AssetCaseLocation, dups[1].AssetType)
}

func TestValidate_missingIdentifier(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	world.Items = append(world.Items, models.Item{Name: "Unnamed trinket"})

	report := newValidator(t).Validate(world, caseData)

	missing := byRule(report.Errors, findings.RuleMissingIdentifier)
	require.Len(t, missing, 1)
	require.Equal(t, findings.AssetItem, missing[0].AssetType)
	require.Empty(t, missing[0].AssetID)
	require.Contains(t, missing[0].Message, "#2")
}
