package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/findings"
)

type casesResponse struct {
	Cases []string `json:"cases"`
}

func (app *application) listCases(w http.ResponseWriter, r *http.Request) {
	names, err := app.store.List()
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list cases"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, casesResponse{Cases: names})
}

// findingView is a finding together with the section of the authoring tool that owns its asset.
type findingView struct {
	findings.Finding
	Section findings.Section `json:"section"`
}

type validationResponse struct {
	Case     string        `json:"case"`
	RunID    string        `json:"runId,omitempty"`
	Errors   []findingView `json:"errors"`
	Warnings []findingView `json:"warnings"`
}

func viewsOf(fs []findings.Finding) []findingView {
	views := make([]findingView, 0, len(fs))
	for _, f := range fs {
		views = append(views, findingView{Finding: f, Section: f.Target().Section})
	}
	return views
}

func newValidationResponse(name, runID string, report *findings.Report) validationResponse {
	return validationResponse{
		Case:     name,
		RunID:    runID,
		Errors:   viewsOf(report.Errors),
		Warnings: viewsOf(report.Warnings),
	}
}

// validateCase validates the case named in the path. With ?record=true the findings are stored as a new run.
func (app *application) validateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := casefile.SanitizeName(r.PathValue("name"))

	record := false
	if raw := r.URL.Query().Get("record"); raw != "" {
		var err error
		if record, err = strconv.ParseBool(raw); err != nil {
			app.clientError(w, r, http.StatusBadRequest, errors.Wrap(err, "parse record"))
			return
		}
	}

	world, caseData, err := app.store.Load(name)
	switch {
	case errors.Is(err, casefile.ErrCaseNotFound):
		app.clientError(w, r, http.StatusNotFound, err)
		return
	case errors.Is(err, casefile.ErrInvalidName):
		app.clientError(w, r, http.StatusBadRequest, err)
		return
	case err != nil:
		app.serverError(w, r, errors.Wrap(err, "load case"))
		return
	}

	report := app.validator.Validate(world, caseData)

	runID := ""
	if record {
		run, recordErr := app.reports.Record(ctx, name, report)
		if recordErr != nil {
			app.serverError(w, r, errors.Wrap(recordErr, "record validation run"))
			return
		}
		runID = run.ID
		app.logger.LogAttrs(ctx, slog.LevelInfo, "recorded validation run", slog.String("run", runID))
	}

	app.writeJSON(w, r, http.StatusOK, newValidationResponse(name, runID, report))
}
