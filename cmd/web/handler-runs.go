package main

import (
	"net/http"
	"strconv"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/models"
	"github.com/manosdvd/agency/internal/repositories"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

var errInvalidLimit = errors.NewSentinel("limit must be between 1 and 100")

type runsResponse struct {
	Case string                 `json:"case"`
	Runs []models.ValidationRun `json:"runs"`
}

// listRuns lists the recorded validation runs of a case, newest first. ?limit caps the number of runs.
func (app *application) listRuns(w http.ResponseWriter, r *http.Request) {
	name := casefile.SanitizeName(r.PathValue("name"))

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			app.clientError(w, r, http.StatusBadRequest, errors.Wrap(err, "parse limit"))
			return
		}
		if limit < 1 || limit > maxRunsLimit {
			app.clientError(w, r, http.StatusBadRequest, errInvalidLimit)
			return
		}
	}

	runs, err := app.reports.Runs(r.Context(), name, limit)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list runs"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, runsResponse{Case: name, Runs: runs})
}

// showRun returns the findings of one recorded run.
func (app *application) showRun(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, report, err := app.reports.Run(r.Context(), id)
	if errors.Is(err, repositories.ErrRunNotFound) {
		app.clientError(w, r, http.StatusNotFound, err)
		return
	}
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "read run"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, newValidationResponse(run.CaseName, id, report))
}
