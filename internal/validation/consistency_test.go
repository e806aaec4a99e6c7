package validation_test

import (
	"testing"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/stretchr/testify/require"
)

func TestValidate_circularDependency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		clues   []models.Clue
		wantIDs []string
	}{
		{
			name: "two clues depend on each other",
			clues: []models.Clue{
				{ClueID: "A", Dependencies: []string{"B"}},
				{ClueID: "B", Dependencies: []string{"A"}},
			},
			wantIDs: []string{"A", "B"},
		},
		{
			name:    "clue depends on itself",
			clues:   []models.Clue{{ClueID: "A", Dependencies: []string{"A"}}},
			wantIDs: []string{"A"},
		},
		{
			name: "clue leading into a cycle reports it too",
			clues: []models.Clue{
				{ClueID: "A", Dependencies: []string{"B"}},
				{ClueID: "B", Dependencies: []string{"C"}},
				{ClueID: "C", Dependencies: []string{"B"}},
			},
			wantIDs: []string{"A", "B", "C"},
		},
		{
			name: "diamond is not a cycle",
			clues: []models.Clue{
				{ClueID: "A", Dependencies: []string{"B", "C"}},
				{ClueID: "B", Dependencies: []string{"D"}},
				{ClueID: "C", Dependencies: []string{"D"}},
				{ClueID: "D"},
			},
			wantIDs: []string{},
		},
		{
			name:    "unknown prerequisites are dead ends",
			clues:   []models.Clue{{ClueID: "A", Dependencies: []string{"Z"}}},
			wantIDs: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.clues {
				tt.clues[i].DiscoveryPath = []string{"search"}
			}

			report := newValidator(t).Validate(&models.WorldData{}, &models.CaseData{Clues: tt.clues})

			cycles := byRule(report.Errors, findings.RuleCircularDependency)
			require.Equal(t, tt.wantIDs, assetIDs(cycles))
			for _, f := range cycles {
				require.Equal(t, findings.AssetClue, f.AssetType)
				require.Equal(t, "dependencies", f.FieldName)
			}
		})
	}
}

func TestValidate_circularDependencyMentionsBothClues(t *testing.T) {
	t.Parallel()
	caseData := &models.CaseData{Clues: []models.Clue{
		{ClueID: "A", Dependencies: []string{"B"}, DiscoveryPath: []string{"search"}},
		{ClueID: "B", Dependencies: []string{"A"}, DiscoveryPath: []string{"search"}},
	}}

	report := newValidator(t).Validate(nil, caseData)

	cycles := byRule(report.Errors, findings.RuleCircularDependency)
	require.Len(t, cycles, 2)
	require.Contains(t, cycles[0].Message, "A -> B -> A")
	require.Contains(t, cycles[1].Message, "B -> A -> B")
}

func TestValidate_undebunkableLie(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	withSuspect(caseData)
	caseData.KeySuspects[0].Interview = append(caseData.KeySuspects[0].Interview, models.InterviewQuestion{
		QuestionID: "q-02", Question: "Did you touch the letter opener?", Answer: "Never.", IsLie: true,
	})

	report := newValidator(t).Validate(world, caseData)

	require.Len(t, report.Errors, 1)
	lie := report.Errors[0]
	require.Equal(t, findings.RuleUndebunkableLie, lie.Rule)
	require.Equal(t, findings.AssetInterviewQuestion, lie.AssetType)
	require.Equal(t, "q-02", lie.AssetID)
	require.Equal(t, "debunkingClue", lie.FieldName)
	require.Contains(t, lie.Message, "Did you touch the letter opener?")
	require.Contains(t, lie.Message, "Victor Blackwood")
}

func TestValidate_witnessLies(t *testing.T) {
	t.Parallel()
	world, caseData := cleanCase()
	caseData.CaseLocations[0].Witnesses = []models.CaseWitness{{
		CharacterID: "char-02",
		Interview: []models.InterviewQuestion{
			{QuestionID: "q-10", Question: "Were you home?", IsLie: true},
			{QuestionID: "q-11", Question: "Who called?", IsLie: true, DebunkingClue: "clue-02"},
		},
	}}

	report := newValidator(t).Validate(world, caseData)

	lies := byRule(report.Errors, findings.RuleUndebunkableLie)
	require.Equal(t, []string{"q-10"}, assetIDs(lies))
}

func TestValidate_orphanedClues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(c *models.CaseData)
		wantOrphan bool
	}{
		{
			name:       "no discovery path",
			mutate:     func(_ *models.CaseData) {},
			wantOrphan: true,
		},
		{
			name: "debunks an interview answer",
			mutate: func(c *models.CaseData) {
				withSuspect(c)
				c.KeySuspects[0].Interview[0].IsLie = true
				c.KeySuspects[0].Interview[0].DebunkingClue = "clue-99"
			},
			wantOrphan: false,
		},
		{
			name: "debunks a witness answer",
			mutate: func(c *models.CaseData) {
				c.CaseLocations[0].Witnesses = []models.CaseWitness{{CharacterID: "char-02",
					Interview: []models.InterviewQuestion{{QuestionID: "q-10", DebunkingClue: "clue-99"}}}}
			},
			wantOrphan: false,
		},
		{
			name: "unlocked by another clue",
			mutate: func(c *models.CaseData) {
				c.Clues[0].RevealsUnlocks = []models.Unlock{{Type: models.UnlockTypeInterviewQuestion, ID: "clue-99"}}
			},
			wantOrphan: false,
		},
		{
			name: "unlocked only by itself",
			mutate: func(c *models.CaseData) {
				last := len(c.Clues) - 1
				c.Clues[last].RevealsUnlocks = []models.Unlock{{Type: models.UnlockTypeInterviewQuestion, ID: "clue-99"}}
			},
			wantOrphan: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, caseData := cleanCase()
			caseData.Clues = append(caseData.Clues, models.Clue{ClueID: "clue-99", ClueSummary: "A hidden note"})
			tt.mutate(caseData)

			report := newValidator(t).Validate(world, caseData)

			orphans := byRule(report.Errors, findings.RuleOrphanedClue)
			if !tt.wantOrphan {
				require.Empty(t, orphans)
				return
			}
			require.Len(t, orphans, 1)
			require.Equal(t, "clue-99", orphans[0].AssetID)
			require.Equal(t, findings.SeverityError, orphans[0].Severity)
		})
	}
}
