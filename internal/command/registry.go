// Package command dispatches console lines to named handlers.
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/console"
	"github.com/vytor/fergusquiz/internal/logger"
)

// UnknownCommandMessage is printed for verbs that have no handler.
const UnknownCommandMessage = "Invalid command!"

// Handler runs one command on behalf of caller. The parsed arguments do not
// include the verb.
type Handler[C any] func(ctx context.Context, caller C, a args.Args) error

// Registry maps verbs to handlers. The caller type C is fixed per registry,
// so a handler written for an authenticated caller cannot be registered on
// a registry that serves guests.
type Registry[C any] struct {
	handlers map[string]Handler[C]
	console  console.Console
}

// NewRegistry returns an empty registry that reports unknown verbs on c.
func NewRegistry[C any](c console.Console) *Registry[C] {
	return &Registry[C]{
		handlers: make(map[string]Handler[C]),
		console:  c,
	}
}

// Register binds name to h, replacing any previous handler.
func (r *Registry[C]) Register(name string, h Handler[C]) *Registry[C] {
	r.handlers[name] = h
	return r
}

// Has reports whether a handler is registered for name.
func (r *Registry[C]) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns the registered verbs, sorted.
func (r *Registry[C]) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch splits the verb off line, parses the rest and runs the matching
// handler. Unknown verbs and blank lines only print a message; the only
// error returned is one raised by a handler.
func (r *Registry[C]) Dispatch(ctx context.Context, caller C, line string) error {
	tokens := strings.Fields(line)
	verb := ""
	if len(tokens) > 0 {
		verb = tokens[0]
		tokens = tokens[1:]
	}

	h, ok := r.handlers[verb]
	if !ok {
		logger.FromContext(ctx).WithPrefix("command").Debug("unknown command: %q", verb)
		r.console.WriteLine(UnknownCommandMessage)
		return nil
	}

	logger.FromContext(ctx).WithPrefix("command").Debug("dispatching %s with %d args", verb, len(tokens))
	return h(ctx, caller, args.Parse(tokens))
}
