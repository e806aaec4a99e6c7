package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/cases", app.listCases)

	caseScoped := alice.New(app.caseContext)
	mux.Handle("GET /api/cases/{name}/validation", caseScoped.ThenFunc(app.validateCase))
	mux.Handle("GET /api/cases/{name}/runs", caseScoped.ThenFunc(app.listRuns))
	mux.HandleFunc("GET /api/runs/{id}", app.showRun)

	mux.HandleFunc("/", app.notFound)

	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	return standard.Then(mux)
}
