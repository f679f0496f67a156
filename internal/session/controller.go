package session

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
)

// Controller holds the active phase and feeds it one line at a time. Each
// command runs to completion before the next line is read.
type Controller struct {
	app     *App
	current Phase
}

// NewController returns a controller with no active phase. Run starts at the
// login phase.
func NewController(app *App) *Controller {
	return &Controller{app: app}
}

// Current is the active phase, nil before Run or Start.
func (c *Controller) Current() Phase {
	return c.current
}

// Start enters the login phase.
func (c *Controller) Start(ctx context.Context) {
	c.current = NewLoginPhase(c)
	c.current.Enter(ctx)
}

// Transition leaves the current phase and enters next.
func (c *Controller) Transition(ctx context.Context, next Phase) {
	log := logger.FromContext(ctx).WithPrefix("session")
	if c.current != nil {
		log.Debug("leaving %s phase", c.current.Name())
		c.current.Exit(ctx)
	}
	c.current = next
	log.Debug("entering %s phase", next.Name())
	next.Enter(ctx)
}

// Run reads and dispatches lines until the exit command, end of input or ctx
// cancellation. Every way out leaves the current phase and flushes the
// roster. Command errors are printed and the loop goes on; only a read
// failure other than end of input is returned.
func (c *Controller) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("session")
	if c.current == nil {
		c.Start(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			log.Info("context done, stopping console")
			return c.shutdown(ctx, nil)
		}

		line, err := c.app.Console.ReadLine()
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				log.Info("end of input")
				return c.shutdown(ctx, nil)
			}
			log.Error("failed to read input: %v", err)
			return c.shutdown(ctx, err)
		}

		err = c.current.Execute(ctx, line)
		switch {
		case err == nil:
		case stderrors.Is(err, ErrExit):
			return c.shutdown(ctx, nil)
		default:
			c.report(ctx, err)
		}
	}
}

func (c *Controller) report(ctx context.Context, err error) {
	log := logger.FromContext(ctx).WithPrefix("session").WithField("phase", c.current.Name())
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Code != errors.ErrCodePersistence {
		log.Debug("command rejected: %v", err)
	} else {
		log.Error("command failed: %v", err)
	}
	c.app.Console.WriteLine("%s", errors.UserMessage(err))
}

func (c *Controller) shutdown(ctx context.Context, cause error) error {
	log := logger.FromContext(ctx).WithPrefix("session")
	c.current.Exit(ctx)
	if err := c.app.Roster.Flush(ctx); err != nil {
		c.app.Console.WriteLine("%s", errors.UserMessage(err))
		if cause == nil {
			cause = err
		}
	}
	log.Info("console stopped")
	return cause
}
