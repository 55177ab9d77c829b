package colourarg

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindColourArgRequired, "colour-arg-required"},
		{KindColourParse, "colour-parse"},
		{KindCouldNotReadStdin, "stdin-read"},
		{KindInvalidUTF8, "invalid-utf8"},
		{KindCouldNotParseNumber, "number-parse"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindColourParse, Text: "mauve"}, "could not parse colour 'mauve'"},
		{&Error{Kind: KindCouldNotReadStdin}, "could not read colour from standard input"},
		{&Error{Kind: KindCouldNotReadStdin, Err: stderrors.New("boom")},
			"could not read colour from standard input: boom"},
		{&Error{Kind: KindInvalidUTF8}, "colour input contains invalid UTF-8"},
		{&Error{Kind: KindUnknown}, "unknown colour argument error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
	assert.Contains(t, ErrColourArgRequired.Error(), "command line or via a pipe")
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: KindColourParse, Text: "mauve"}
	assert.ErrorIs(t, err, ErrColourParse)
	assert.ErrorIs(t, err, &Error{Kind: KindColourParse, Text: "mauve"})
	assert.NotErrorIs(t, err, &Error{Kind: KindColourParse, Text: "puce"})
	assert.NotErrorIs(t, err, ErrCouldNotParseNumber)
	assert.NotErrorIs(t, err, stderrors.New("could not parse colour 'mauve'"))
}

func TestNumberArg(t *testing.T) {
	v, err := NumberArg("0.25")
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = NumberArg("-120")
	require.NoError(t, err)
	assert.Equal(t, -120.0, v)

	_, err = NumberArg("12deg")
	assert.ErrorIs(t, err, ErrCouldNotParseNumber)
	assert.ErrorIs(t, err, &Error{Kind: KindCouldNotParseNumber, Text: "12deg"})
	assert.True(t, strings.HasPrefix(err.Error(), "could not parse number '12deg'"))
}

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError),
		"default logger should be silent")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf,
		&slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	it, err := New(nil, testParse,
		WithStdin(strings.NewReader("red\n")),
		WithTerminalCheck(notTerminal))
	require.NoError(t, err)
	collect(t, it)

	out := buf.String()
	assert.Contains(t, out, "read colour line from stdin")
	assert.Contains(t, out, "colour iterator finished")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
