package findings

// Section is the top-level area of the authoring tool that owns an asset type.
type Section string

const (
	SectionWorld Section = "world"
	SectionCase  Section = "case"
)

// Section reports whether t lives in the World Graph or the Case Graph.
func (t AssetType) Section() Section {
	switch t {
	case AssetCharacter, AssetLocation, AssetItem, AssetFaction, AssetDistrict, AssetSleuth:
		return SectionWorld
	case AssetClue, AssetCaseMeta, AssetCaseSuspect, AssetCaseLocation, AssetCaseWitness, AssetInterviewQuestion,
		AssetCase:
		return SectionCase
	}
	return SectionCase
}

// Target is where a host application should navigate to show a finding.
type Target struct {
	Section   Section
	AssetType AssetType
	AssetID   string
	FieldName string
}

// Target resolves the navigation target of f.
func (f Finding) Target() Target {
	return Target{
		Section:   f.AssetType.Section(),
		AssetType: f.AssetType,
		AssetID:   f.AssetID,
		FieldName: f.FieldName,
	}
}
