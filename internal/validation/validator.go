// Package validation walks a world and case graph and reports everything that would make the mystery unsolvable,
// inconsistent, or unpleasant to play.
//
// The validator is advisory. It never mutates its input and never fails: every anomaly becomes a finding, and every
// rule runs on every pass so findings accumulate independently. Rules run in a fixed order and emit findings in the
// iteration order of the underlying collections, so the same graph always yields the same report.
package validation

import (
	"log/slog"

	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/manosdvd/agency/internal/refindex"
)

// Thresholds tune the pacing heuristics.
type Thresholds struct {
	// MinRedHerrings is the fewest red herrings a case with clues should have.
	MinRedHerrings int `env:"AGENCY_MIN_RED_HERRINGS" envDefault:"2"`
	// MaxClues is the clue count above which players are likely to be overwhelmed.
	MaxClues int `env:"AGENCY_MAX_CLUES" envDefault:"15"`
	// MaxSuspects is the suspect count above which players are likely to be overwhelmed.
	MaxSuspects int `env:"AGENCY_MAX_SUSPECTS" envDefault:"5"`
}

// DefaultThresholds returns the thresholds used when nothing is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinRedHerrings: 2,
		MaxClues:       15,
		MaxSuspects:    5,
	}
}

type Validator struct {
	thresholds Thresholds
	logger     *slog.Logger
}

func New(thresholds Thresholds, logger *slog.Logger) *Validator {
	return &Validator{
		thresholds: thresholds,
		logger:     logger.With("source", "Validator"),
	}
}

// run is the state of a single validation pass.
type run struct {
	world      *models.WorldData
	caseData   *models.CaseData
	idx        *refindex.Index
	report     *findings.Report
	thresholds Thresholds
}

// rules in the order they run. Tier 1 is foundational integrity, tier 2 logical consistency, tier 3 playability
// and narrative craft, tier 4 player experience.
var rules = []func(r *run){
	// Tier 1.
	checkIdentifiers,
	checkReferences,
	// Tier 2.
	checkOrphanedClues,
	checkUndebunkableLies,
	checkCircularDependencies,
	// Tier 3.
	checkDeadEndLocations,
	checkDeadEndSuspects,
	checkCoreMystery,
	checkWeaponAccess,
	checkCrimeSceneAccess,
	checkUnsolvableRedHerrings,
	checkRedHerringCount,
	checkSuspectPlausibility,
	// Tier 4. The deduction path reminder must stay last since it looks at the errors of every other rule.
	checkCognitiveLoad,
	checkDeductionPath,
}

// Validate checks world and caseData and returns the findings. A nil aggregate is treated as empty.
func (v *Validator) Validate(world *models.WorldData, caseData *models.CaseData) *findings.Report {
	if world == nil {
		world = &models.WorldData{}
	}
	if caseData == nil {
		caseData = &models.CaseData{}
	}

	r := &run{
		world:      world,
		caseData:   caseData,
		idx:        refindex.Build(world, caseData),
		report:     findings.NewReport(),
		thresholds: v.thresholds,
	}
	for _, rule := range rules {
		rule(r)
	}

	v.logger.Debug("validated case",
		slog.Int("errors", len(r.report.Errors)),
		slog.Int("warnings", len(r.report.Warnings)))

	return r.report
}

// characterLabel names a character for messages, falling back to the raw id when it does not resolve.
func (r *run) characterLabel(id string) string {
	if ch, ok := r.idx.Character(id); ok && ch.FullName != "" {
		return ch.FullName
	}
	return id
}
