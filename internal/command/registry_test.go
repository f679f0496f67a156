package command_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/command"
	"github.com/vytor/fergusquiz/internal/console"
)

type caller struct{ name string }

func TestDispatch_RoutesToHandler(t *testing.T) {
	c := console.NewScripted()
	r := command.NewRegistry[*caller](c)

	var gotCaller *caller
	var gotArgs args.Args
	r.Register("quiz", func(ctx context.Context, who *caller, a args.Args) error {
		gotCaller = who
		gotArgs = a
		return nil
	})

	me := &caller{name: "Jam17"}
	require.NoError(t, r.Dispatch(context.Background(), me, "quiz maths  easy"))

	assert.Same(t, me, gotCaller)
	assert.Equal(t, []string{"maths", "easy"}, gotArgs.Positional)
	assert.Empty(t, c.Lines())
}

func TestDispatch_UnknownVerb(t *testing.T) {
	c := console.NewScripted()
	r := command.NewRegistry[struct{}](c)

	called := false
	r.Register("help", func(context.Context, struct{}, args.Args) error {
		called = true
		return nil
	})

	for _, line := range []string{"dance", "", "   ", "-g quiz"} {
		assert.NoError(t, r.Dispatch(context.Background(), struct{}{}, line))
	}

	assert.False(t, called)
	assert.Equal(t, []string{
		command.UnknownCommandMessage,
		command.UnknownCommandMessage,
		command.UnknownCommandMessage,
		command.UnknownCommandMessage,
	}, c.Lines())
}

func TestDispatch_PropagatesHandlerError(t *testing.T) {
	boom := stderrors.New("boom")
	r := command.NewRegistry[struct{}](console.NewScripted())
	r.Register("fail", func(context.Context, struct{}, args.Args) error { return boom })

	assert.ErrorIs(t, r.Dispatch(context.Background(), struct{}{}, "fail now"), boom)
}

func TestRegister_Overwrites(t *testing.T) {
	r := command.NewRegistry[struct{}](console.NewScripted())

	first, second := 0, 0
	r.Register("x", func(context.Context, struct{}, args.Args) error { first++; return nil })
	r.Register("x", func(context.Context, struct{}, args.Args) error { second++; return nil })

	require.NoError(t, r.Dispatch(context.Background(), struct{}{}, "x"))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.True(t, r.Has("x"))
}

func TestNames_Sorted(t *testing.T) {
	r := command.NewRegistry[struct{}](console.NewScripted())
	noop := func(context.Context, struct{}, args.Args) error { return nil }
	r.Register("signup", noop).Register("exit", noop).Register("login", noop)

	assert.Equal(t, []string{"exit", "login", "signup"}, r.Names())
}
