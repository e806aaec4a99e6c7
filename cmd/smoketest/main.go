package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/manosdvd/agency/internal/e2etest"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/logging"
)

type casesBody struct {
	Cases []string `json:"cases"`
}

type validationBody struct {
	Errors   []struct{} `json:"errors"`
	Warnings []struct{} `json:"warnings"`
}

// checkCases validates every case served at the client's address without recording runs.
func checkCases(ctx context.Context, logger *slog.Logger, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return errors.Wrap(err, "wait for ready")
	}

	var cases casesBody
	status, err := client.GetJSON(ctx, "/api/cases", &cases)
	if err != nil {
		return errors.Wrap(err, "list cases")
	}
	if status != http.StatusOK {
		return errors.New("unexpected status listing cases", slog.Int("status", status))
	}

	for _, name := range cases.Cases {
		var report validationBody
		if status, err = client.GetJSON(ctx, "/api/cases/"+name+"/validation", &report); err != nil {
			return errors.Wrap(err, "validate case", slog.String("case", name))
		}
		if status != http.StatusOK {
			return errors.New("unexpected status validating case",
				slog.String("case", name), slog.Int("status", status))
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "validated case", slog.String("case", name),
			slog.Int("errors", len(report.Errors)), slog.Int("warnings", len(report.Warnings)))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only the base URL to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <base url>")
		os.Exit(1)
	}

	url := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("url", url))

	if err := checkCases(ctx, logger, e2etest.NewClient(url)); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful")
}
