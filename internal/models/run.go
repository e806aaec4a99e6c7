package models

import "time"

// ValidationRun summarises one recorded validation pass over a case.
type ValidationRun struct {
	ID           string    `db:"id" json:"id"`
	CaseName     string    `db:"case_name" json:"caseName"`
	Created      time.Time `db:"created" json:"created"`
	ErrorCount   int       `db:"error_count" json:"errorCount"`
	WarningCount int       `db:"warning_count" json:"warningCount"`
}
