// Package findings holds the output of a validation run: what went wrong, how badly, and where to look.
package findings

// Severity separates findings that break the mystery from findings about craft.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// AssetType identifies the kind of entity a finding points at.
type AssetType string

const (
	AssetCharacter         AssetType = "Character"
	AssetLocation          AssetType = "Location"
	AssetItem              AssetType = "Item"
	AssetFaction           AssetType = "Faction"
	AssetDistrict          AssetType = "District"
	AssetSleuth            AssetType = "Sleuth"
	AssetClue              AssetType = "Clue"
	AssetCaseMeta          AssetType = "CaseMeta"
	AssetCaseSuspect       AssetType = "CaseSuspect"
	AssetCaseLocation      AssetType = "CaseLocation"
	AssetCaseWitness       AssetType = "CaseWitness"
	AssetInterviewQuestion AssetType = "InterviewQuestion"
	// AssetCase is used for findings about the case as a whole, such as clue counts.
	AssetCase AssetType = "Case"
)

// AssetTypes lists every asset type in declaration order.
var AssetTypes = []AssetType{
	AssetCharacter, AssetLocation, AssetItem, AssetFaction, AssetDistrict, AssetSleuth,
	AssetClue, AssetCaseMeta, AssetCaseSuspect, AssetCaseLocation, AssetCaseWitness, AssetInterviewQuestion,
	AssetCase,
}

// Rule names the check that produced a finding.
type Rule string

const (
	RuleMissingIdentifier    Rule = "missing_identifier"
	RuleDuplicateID          Rule = "duplicate_id"
	RuleInvalidReference     Rule = "invalid_reference"
	RuleOrphanedClue         Rule = "orphaned_clue"
	RuleUndebunkableLie      Rule = "undebunkable_lie"
	RuleCircularDependency   Rule = "circular_dependency"
	RuleDeadEndLocation      Rule = "dead_end_location"
	RuleDeadEndSuspect       Rule = "dead_end_suspect"
	RuleUninformativeSuspect Rule = "uninformative_suspect"
	RuleCoreMysteryUndefined Rule = "core_mystery_undefined"
	RuleMissingCoreClue      Rule = "missing_core_clue"
	RuleWeaponAccess         Rule = "weapon_access"
	RuleCrimeSceneAccess     Rule = "crime_scene_access"
	RuleUnsolvableRedHerring Rule = "unsolvable_red_herring"
	RuleTooFewRedHerrings    Rule = "too_few_red_herrings"
	RuleImplausibleSuspect   Rule = "implausible_suspect"
	RuleTooManyClues         Rule = "too_many_clues"
	RuleTooManySuspects      Rule = "too_many_suspects"
	RuleVerifyDeductionPath  Rule = "verify_deduction_path"
)

// Finding is one validation result. AssetID, when set, is always a key of the collection named by AssetType.
type Finding struct {
	Rule      Rule      `json:"rule" yaml:"rule"`
	Message   string    `json:"message" yaml:"message"`
	Severity  Severity  `json:"severity" yaml:"severity"`
	AssetID   string    `json:"assetId,omitempty" yaml:"assetId,omitempty"`
	AssetType AssetType `json:"assetType" yaml:"assetType"`
	FieldName string    `json:"fieldName,omitempty" yaml:"fieldName,omitempty"`
}
