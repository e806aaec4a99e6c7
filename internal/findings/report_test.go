package findings_test

import (
	"encoding/json"
	"testing"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/stretchr/testify/require"
)

func TestReport_Add(t *testing.T) {
	r := findings.NewReport()
	r.Error(findings.RuleInvalidReference, findings.AssetCharacter, "char-01", "faction", "bad faction")
	r.Warn(findings.RuleDeadEndLocation, findings.AssetCaseLocation, "loc-01", "", "dead end")
	r.Error(findings.RuleOrphanedClue, findings.AssetClue, "clue-01", "discoveryPath", "orphan")

	require.True(t, r.HasErrors())
	require.Len(t, r.Errors, 2)
	require.Len(t, r.Warnings, 1)
	require.Equal(t, findings.RuleInvalidReference, r.Errors[0].Rule)
	require.Equal(t, findings.RuleOrphanedClue, r.Errors[1].Rule)
	require.Equal(t, findings.SeverityWarning, r.Warnings[0].Severity)

	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, findings.RuleDeadEndLocation, all[2].Rule)

	require.Len(t, r.For(findings.AssetClue, "clue-01"), 1)
	require.Empty(t, r.For(findings.AssetClue, "clue-02"))
}

func TestReport_emptyJSON(t *testing.T) {
	out, err := json.Marshal(findings.NewReport())
	require.NoError(t, err)
	require.JSONEq(t, `{"errors":[],"warnings":[]}`, string(out))
}

func TestFinding_JSONShape(t *testing.T) {
	f := findings.Finding{
		Rule:      findings.RuleCoreMysteryUndefined,
		Message:   "Core Mystery Not Defined",
		Severity:  findings.SeverityError,
		AssetType: findings.AssetCaseMeta,
	}
	out, err := json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"rule": "core_mystery_undefined",
		"message": "Core Mystery Not Defined",
		"severity": "error",
		"assetType": "CaseMeta"
	}`, string(out))
}

func TestAssetType_Section(t *testing.T) {
	world := map[findings.AssetType]bool{
		findings.AssetCharacter: true,
		findings.AssetLocation:  true,
		findings.AssetItem:      true,
		findings.AssetFaction:   true,
		findings.AssetDistrict:  true,
		findings.AssetSleuth:    true,
	}
	for _, assetType := range findings.AssetTypes {
		t.Run(string(assetType), func(t *testing.T) {
			want := findings.SectionCase
			if world[assetType] {
				want = findings.SectionWorld
			}
			require.Equal(t, want, assetType.Section())
		})
	}
}

func TestFinding_Target(t *testing.T) {
	f := findings.Finding{AssetType: findings.AssetItem, AssetID: "item-01", FieldName: "defaultOwner"}
	require.Equal(t, findings.Target{
		Section:   findings.SectionWorld,
		AssetType: findings.AssetItem,
		AssetID:   "item-01",
		FieldName: "defaultOwner",
	}, f.Target())
}
