package colourarg

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/realh/hslcore/pkg/colour"
)

// StdinIsTerminal reports whether the process's stdin is an interactive
// terminal rather than a pipe or file.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ColourFromStdin reads one line from rdr and parses it. If nothing at all
// could be read, because of EOF or a read failure, the result is a
// KindCouldNotReadStdin error. Text read before a failure is treated as a
// complete line. A line that isn't valid UTF-8 gives
// KindInvalidUTF8 and one that doesn't parse gives KindColourParse. In both of
// those cases the line has been consumed so the next call reads the line
// after it.
func ColourFromStdin(rdr *bufio.Reader, parse Parser) (colour.Colour, error) {
	line, err := rdr.ReadString('\n')
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if len(line) == 0 {
		if err != nil {
			err = errors.Wrap(err, "reading standard input")
		}
		return colour.Colour{}, &Error{Kind: KindCouldNotReadStdin, Err: err}
	}
	if err != nil {
		// The partial line is still a colour; the failure shows up on the
		// next read.
		Logger().Debug("stdin read failed after partial line", "error", err)
	}
	Logger().Debug("read colour line from stdin", "bytes", len(line))
	if !utf8.ValidString(line) {
		return colour.Colour{}, &Error{Kind: KindInvalidUTF8}
	}
	line = strings.TrimSpace(line)
	return parseColour(line, parse)
}

// FromColourArg parses a single command line argument. "-" reads one colour
// from rdr with ColourFromStdin instead, and every error from that, including
// KindCouldNotReadStdin, is returned.
func FromColourArg(arg string, rdr *bufio.Reader, parse Parser) (
	colour.Colour, error,
) {
	if arg == "-" {
		return ColourFromStdin(rdr, parse)
	}
	return parseColour(arg, parse)
}

func parseColour(text string, parse Parser) (colour.Colour, error) {
	c, ok := parse(text)
	if !ok {
		return colour.Colour{}, &Error{Kind: KindColourParse, Text: text}
	}
	return c, nil
}
