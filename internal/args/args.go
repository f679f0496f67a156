// Package args turns a command line into positional arguments and flags.
package args

import "strings"

// Args is the parsed form of a command line, without the command name.
type Args struct {
	Positional []string
	Flags      map[string]string
	Raw        []string
}

// ParseLine splits line on whitespace and parses the tokens.
func ParseLine(line string) Args {
	return Parse(strings.Fields(line))
}

// Parse never fails: malformed flag syntax degrades to a best-effort result.
//
// A token starting with "-" opens a flag and the following non-flag token is
// its value. A flag followed by another flag, or by nothing, has the value "".
// "-key=value" is split on its first "=". Later occurrences of a flag win.
func Parse(tokens []string) Args {
	a := Args{
		Positional: []string{},
		Flags:      map[string]string{},
		Raw:        make([]string, 0, len(tokens)),
	}

	pending := ""
	open := false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		a.Raw = append(a.Raw, tok)

		if strings.HasPrefix(tok, "-") {
			if open {
				a.Flags[pending] = ""
				open = false
			}
			name := tok[1:]
			if key, value, ok := strings.Cut(name, "="); ok {
				a.Flags[key] = value
				continue
			}
			pending, open = name, true
			continue
		}

		if open {
			a.Flags[pending] = tok
			open = false
			continue
		}
		a.Positional = append(a.Positional, tok)
	}
	if open {
		a.Flags[pending] = ""
	}
	return a
}

// Len is the number of positional arguments.
func (a Args) Len() int {
	return len(a.Positional)
}

// HasFlag reports whether the flag was given, with or without a value.
func (a Args) HasFlag(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// Flag returns the flag's value, or "" when absent.
func (a Args) Flag(name string) string {
	return a.Flags[name]
}

// FlagOr returns the flag's value, or def when the flag is absent or empty.
func (a Args) FlagOr(name, def string) string {
	if v := a.Flags[name]; v != "" {
		return v
	}
	return def
}

// Reader reads positional arguments in order.
type Reader struct {
	args  []string
	index int
}

// NewReader returns a Reader over a's positional arguments.
func NewReader(a Args) *Reader {
	return &Reader{args: a.Positional}
}

// HasNext reports whether another positional argument remains.
func (r *Reader) HasNext() bool {
	return r.index < len(r.args)
}

// Next returns the next positional argument, or "" and false when none remain.
func (r *Reader) Next() (string, bool) {
	if !r.HasNext() {
		return "", false
	}
	v := r.args[r.index]
	r.index++
	return v, true
}
