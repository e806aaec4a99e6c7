package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/findings"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var ErrUnknownFormat = errors.NewSentinel("unknown output format")

type renderer func(w io.Writer, caseName string, report *findings.Report) error

func rendererFor(format string) (renderer, error) {
	switch format {
	case formatText:
		return renderText, nil
	case formatJSON:
		return renderJSON, nil
	case formatYAML:
		return renderYAML, nil
	default:
		return nil, errors.Wrap(ErrUnknownFormat, "select renderer", slog.String("format", format))
	}
}

// renderText writes a human-readable summary followed by the errors and warnings.
func renderText(w io.Writer, caseName string, report *findings.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s, %s\n", caseName,
		plural(len(report.Errors), "error"), plural(len(report.Warnings), "warning"))
	writeSection(&b, "Errors", report.Errors)
	writeSection(&b, "Warnings", report.Warnings)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string, fs []findings.Finding) {
	if len(fs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, f := range fs {
		fmt.Fprintf(b, "  %s\n    %s\n", location(f), f.Message)
	}
}

// location renders where a finding points, e.g. "Clue clue-02 (associatedLocation)".
func location(f findings.Finding) string {
	loc := string(f.AssetType)
	if f.AssetID != "" {
		loc += " " + f.AssetID
	}
	if f.FieldName != "" {
		loc += " (" + f.FieldName + ")"
	}
	return loc
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func renderJSON(w io.Writer, _ string, report *findings.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderYAML(w io.Writer, _ string, report *findings.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // two-space indentation
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}
