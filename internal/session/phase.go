package session

import (
	"context"
	stderrors "errors"

	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/command"
)

// ErrExit is returned by the exit command to stop the controller.
var ErrExit = stderrors.New("exit requested")

// Phase is one state of the console. Each phase owns the commands that are
// valid in it.
type Phase interface {
	Name() string
	Enter(ctx context.Context)
	Exit(ctx context.Context)
	DisplayHelp()
	Execute(ctx context.Context, line string) error
}

// Guest is the caller before anyone has logged in.
type Guest struct{}

// registerCommon adds help and exit, which every phase accepts.
func registerCommon[C any](r *command.Registry[C], ctrl *Controller) {
	r.Register("help", func(_ context.Context, _ C, _ args.Args) error {
		ctrl.Current().DisplayHelp()
		return nil
	})
	r.Register("exit", func(_ context.Context, _ C, _ args.Args) error {
		ctrl.app.Console.WriteLine("Exiting Fergus' Quiz.")
		return ErrExit
	})
}
