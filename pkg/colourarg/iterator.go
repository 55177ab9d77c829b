// Package colourarg reads colours from command line arguments or from stdin,
// one per line.
//
// The strings are turned into colours by a Parser supplied by the caller;
// this package doesn't know any colour syntax itself.
package colourarg

import (
	"bufio"
	"io"
	"iter"
	"os"

	"github.com/pkg/errors"

	"github.com/realh/hslcore/pkg/colour"
)

// Parser converts text such as "#ff0000" or "red" to a Colour. It returns
// false if the text isn't recognised.
type Parser func(text string) (colour.Colour, bool)

// source is implemented by positionalSource and stdinSource only.
type source interface {
	// next returns the next item. ok is false at the end of the sequence.
	next(it *Iterator) (c colour.Colour, ok bool, err error)
}

// positionalSource yields parsed command line arguments. "-" takes one line
// from stdin.
type positionalSource struct {
	args []string
}

func (s *positionalSource) next(it *Iterator) (colour.Colour, bool, error) {
	if len(s.args) == 0 {
		return colour.Colour{}, false, nil
	}
	arg := s.args[0]
	s.args = s.args[1:]
	c, err := FromColourArg(arg, it.stdin, it.parse)
	return c, true, err
}

// stdinSource yields one colour per line of stdin until it can't read any
// more.
type stdinSource struct{}

func (stdinSource) next(it *Iterator) (colour.Colour, bool, error) {
	c, err := ColourFromStdin(it.stdin, it.parse)
	if errors.Is(err, ErrCouldNotReadStdin) {
		return colour.Colour{}, false, nil
	}
	return c, true, err
}

// Iterator is a pull-based sequence of colours, see New. It is not safe for
// concurrent use and it must be the only reader of its stdin.
type Iterator struct {
	src   source
	parse Parser
	stdin *bufio.Reader
	done  bool
}

// Option configures New.
type Option func(*options)

type options struct {
	stdin      io.Reader
	isTerminal func() bool
}

// WithStdin replaces os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithTerminalCheck replaces StdinIsTerminal.
func WithTerminalCheck(isTerminal func() bool) Option {
	return func(o *options) { o.isTerminal = isTerminal }
}

// New creates an Iterator. If args is non-empty each of them is parsed in
// turn, and stdin is only read for "-". Otherwise stdin is read line by line,
// and New fails with KindColourArgRequired if stdin is a terminal.
func New(args []string, parse Parser, opts ...Option) (*Iterator, error) {
	o := options{stdin: os.Stdin, isTerminal: StdinIsTerminal}
	for _, opt := range opts {
		opt(&o)
	}
	it := &Iterator{
		parse: parse,
		stdin: bufio.NewReader(o.stdin),
	}
	if len(args) > 0 {
		it.src = &positionalSource{args: append([]string(nil), args...)}
		return it, nil
	}
	if o.isTerminal() {
		return nil, &Error{Kind: KindColourArgRequired}
	}
	it.src = stdinSource{}
	return it, nil
}

// Next returns the next colour, or an error for an item that couldn't be
// read or parsed. A failed item doesn't stop the sequence. ok is false once
// the sequence has ended, and from then on.
func (it *Iterator) Next() (c colour.Colour, ok bool, err error) {
	if it.done {
		return colour.Colour{}, false, nil
	}
	c, ok, err = it.src.next(it)
	if !ok {
		it.done = true
		Logger().Debug("colour iterator finished")
	}
	return c, ok, err
}

// All adapts the Iterator for range-over-func. Breaking out of the loop
// leaves the remaining items unread.
func (it *Iterator) All() iter.Seq2[colour.Colour, error] {
	return func(yield func(colour.Colour, error) bool) {
		for {
			c, ok, err := it.Next()
			if !ok || !yield(c, err) {
				return
			}
		}
	}
}
