package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/findings"
	"github.com/manosdvd/agency/internal/models"
	"github.com/manosdvd/agency/internal/sqlite"
)

var ErrRunNotFound = errors.NewSentinel("validation run not found")

// ReportRepository keeps the history of validation runs per case.
type ReportRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewReportRepository(dbs *sqlite.Database, logger *slog.Logger) *ReportRepository {
	return &ReportRepository{
		dbs:    dbs,
		logger: logger.With("source", "ReportRepository"),
	}
}

// findingRow is the stored shape of a finding. Optional fields are stored as empty strings.
type findingRow struct {
	RunID     string `db:"run_id"`
	Position  int    `db:"position"`
	Rule      string `db:"rule"`
	Severity  string `db:"severity"`
	Message   string `db:"message"`
	AssetID   string `db:"asset_id"`
	AssetType string `db:"asset_type"`
	FieldName string `db:"field_name"`
}

// Record stores report as a new run of caseName and returns the run.
func (r *ReportRepository) Record(ctx context.Context, caseName string, report *findings.Report) (*models.ValidationRun, error) {
	run := models.ValidationRun{
		ID:           uuid.NewString(),
		CaseName:     caseName,
		Created:      time.Now().UTC(),
		ErrorCount:   len(report.Errors),
		WarningCount: len(report.Warnings),
	}

	tx, err := r.dbs.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer func() {
		// Rollback after a successful commit returns sql.ErrTxDone, which is fine to ignore.
		_ = tx.Rollback()
	}()

	stmt := `INSERT INTO validation_runs (id, case_name, created, error_count, warning_count)
VALUES (:id, :case_name, :created, :error_count, :warning_count)`
	if _, err = tx.NamedExecContext(ctx, stmt, run); err != nil {
		return nil, errors.Wrap(err, "insert validation run", slog.String("case", caseName))
	}

	all := report.All()
	if len(all) > 0 {
		rows := make([]findingRow, 0, len(all))
		for i, f := range all {
			rows = append(rows, findingRow{
				RunID:     run.ID,
				Position:  i,
				Rule:      string(f.Rule),
				Severity:  string(f.Severity),
				Message:   f.Message,
				AssetID:   f.AssetID,
				AssetType: string(f.AssetType),
				FieldName: f.FieldName,
			})
		}
		stmt = `INSERT INTO findings (run_id, position, rule, severity, message, asset_id, asset_type, field_name)
VALUES (:run_id, :position, :rule, :severity, :message, :asset_id, :asset_type, :field_name)`
		if _, err = tx.NamedExecContext(ctx, stmt, rows); err != nil {
			return nil, errors.Wrap(err, "insert findings", slog.String("run", run.ID))
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit transaction")
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "recorded validation run",
		slog.String("run", run.ID), slog.String("case", caseName))
	return &run, nil
}

// Runs lists the runs of caseName, newest first, at most limit of them.
func (r *ReportRepository) Runs(ctx context.Context, caseName string, limit int) ([]models.ValidationRun, error) {
	runs := []models.ValidationRun{}
	stmt := `SELECT id, case_name, created, error_count, warning_count
FROM validation_runs
WHERE case_name = ?
ORDER BY created DESC, rowid DESC
LIMIT ?`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &runs, stmt, caseName, limit); err != nil {
		return nil, errors.Wrap(err, "select validation runs", slog.String("case", caseName))
	}
	return runs, nil
}

// Run reads back a recorded run and its findings in the order they were emitted.
func (r *ReportRepository) Run(ctx context.Context, runID string) (*models.ValidationRun, *findings.Report, error) {
	var run models.ValidationRun
	err := r.dbs.ReadOnly.GetContext(ctx, &run, `SELECT id, case_name, created, error_count, warning_count
FROM validation_runs
WHERE id = ?`, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, errors.Wrap(ErrRunNotFound, "select validation run", slog.String("run", runID))
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "select validation run", slog.String("run", runID))
	}

	var rows []findingRow
	stmt := `SELECT run_id, position, rule, severity, message, asset_id, asset_type, field_name
FROM findings
WHERE run_id = ?
ORDER BY position`
	if err = r.dbs.ReadOnly.SelectContext(ctx, &rows, stmt, runID); err != nil {
		return nil, nil, errors.Wrap(err, "select findings", slog.String("run", runID))
	}

	report := findings.NewReport()
	for _, row := range rows {
		report.Add(findings.Finding{
			Rule:      findings.Rule(row.Rule),
			Message:   row.Message,
			Severity:  findings.Severity(row.Severity),
			AssetID:   row.AssetID,
			AssetType: findings.AssetType(row.AssetType),
			FieldName: row.FieldName,
		})
	}
	return &run, report, nil
}
