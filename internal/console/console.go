// Package console is the line-oriented I/O boundary used by the session,
// the quiz engine and the report command.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console reads and writes whole lines.
type Console interface {
	// ReadLine blocks for the next line, without its line terminator.
	// It returns io.EOF once input is exhausted.
	ReadLine() (string, error)
	// WriteLine formats and writes one line. Text that is not a constant
	// format goes through "%s".
	WriteLine(format string, args ...any)
}

// Stream is a Console over an input reader and an output writer.
type Stream struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
	out     *bufio.Writer
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Stream {
	return &Stream{
		scanner: bufio.NewScanner(in),
		out:     bufio.NewWriter(out),
	}
}

// ReadLine returns the next line with any trailing carriage return removed.
func (s *Stream) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.scanner.Text(), "\r"), nil
}

// WriteLine flushes after every line so prompts are visible before a read blocks.
func (s *Stream) WriteLine(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
	s.out.WriteString("\n")
	_ = s.out.Flush()
}

// Scripted is an in-memory Console that replays fixed input lines and records
// every written line.
type Scripted struct {
	mu     sync.Mutex
	input  []string
	output []string
	err    error
}

// NewScripted returns a Console that yields lines in order, then io.EOF.
func NewScripted(lines ...string) *Scripted {
	return &Scripted{input: lines}
}

// FailWith makes reads fail with err once the scripted lines run out.
func (s *Scripted) FailWith(err error) *Scripted {
	s.err = err
	return s
}

// ReadLine returns the next scripted line, then the FailWith error or io.EOF.
func (s *Scripted) ReadLine() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.input) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.input[0]
	s.input = s.input[1:]
	return line, nil
}

// WriteLine records one formatted line.
func (s *Scripted) WriteLine(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = append(s.output, fmt.Sprintf(format, args...))
}

// Lines returns a copy of everything written so far.
func (s *Scripted) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.output))
	copy(out, s.output)
	return out
}

// Output returns everything written so far joined with newlines.
func (s *Scripted) Output() string {
	return strings.Join(s.Lines(), "\n")
}

// Reset discards recorded output.
func (s *Scripted) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = nil
}

// Remaining is the number of unread input lines.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.input)
}
