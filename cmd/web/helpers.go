package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/manosdvd/agency/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes data as the JSON body of a response with the given status.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelDebug, "failed to write response", errors.SlogError(err))
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	app.writeJSON(w, r, status, errorResponse{Error: http.StatusText(status)})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound, errors.New("no route"))
}
