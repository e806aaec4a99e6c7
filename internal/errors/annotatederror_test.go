package errors

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())
	require.NotErrorIs(t, err, NewSentinel("test error"))

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	sentinel := NewSentinel("case not found")
	wrapped := Wrap(sentinel, "load case", slog.String("case", "crimson_stain"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "load case: case not found", wrapped.Error())

	twice := Wrap(wrapped, "open editor")
	require.ErrorIs(t, twice, sentinel)

	var annotated AnnotatedError
	require.True(t, As(twice, &annotated))
	require.Contains(t, annotated.LogValue().Group(), slog.String("case", "crimson_stain"))

	require.NoError(t, Wrap(nil, "nothing happened"))
}

func TestSlogError(t *testing.T) {
	plain := SlogError(NewSentinel("boom"))
	require.Equal(t, "error", plain.Key)
	require.Equal(t, "boom", plain.Value.String())

	annotated := SlogError(Wrap(NewSentinel("boom"), "explode"))
	require.Equal(t, "error", annotated.Key)
	require.Equal(t, slog.KindGroup, annotated.Value.Resolve().Kind())
}
