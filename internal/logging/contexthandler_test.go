package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/manosdvd/agency/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil))).With("source", "test")

	ctx := logging.WithAttrs(context.Background(), slog.String("case", "crimson_stain"))
	ctx = logging.WithAttrs(ctx, slog.Int("clues", 3))
	logger.InfoContext(ctx, "validated")

	out := buf.String()
	require.Contains(t, out, "source=test")
	require.Contains(t, out, "case=crimson_stain")
	require.Contains(t, out, "clues=3")
}

func TestWithAttrs_siblingsDoNotShare(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))

	parent := logging.WithAttrs(context.Background(), slog.String("a", "1"))
	left := logging.WithAttrs(parent, slog.String("b", "2"))
	_ = logging.WithAttrs(parent, slog.String("c", "3"))

	logger.InfoContext(left, "left")
	require.Contains(t, buf.String(), "b=2")
	require.NotContains(t, buf.String(), "c=3")
}
