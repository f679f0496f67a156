package session

import (
	"context"

	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/command"
	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/quiz"
)

const (
	quizUsage     = "Invalid input. quiz <subject> <difficulty>"
	quizSelection = "Invalid choice of subject or difficulty!"
)

// StudentPhase is the phase after login. Handlers receive the student as it
// currently stands in the roster, not as it was at login.
type StudentPhase struct {
	ctrl     *Controller
	username string
	fullName string
	admin    bool
	registry *command.Registry[models.Student]
}

// NewStudentPhase registers the student commands, plus report when s is an
// administrator.
func NewStudentPhase(ctrl *Controller, s models.Student) *StudentPhase {
	p := &StudentPhase{
		ctrl:     ctrl,
		username: s.Username,
		fullName: s.FullName,
		admin:    s.Admin,
		registry: command.NewRegistry[models.Student](ctrl.app.Console),
	}
	registerCommon(p.registry, ctrl)
	p.registry.
		Register("quiz", p.quiz).
		Register("logout", p.logout)
	if s.Admin {
		p.registry.Register("report", p.report)
	}
	return p
}

// Name identifies the phase in logs.
func (p *StudentPhase) Name() string { return "student" }

// Enter shows the student help.
func (p *StudentPhase) Enter(ctx context.Context) {
	p.DisplayHelp()
}

// Exit only logs; the roster is already saved after every change.
func (p *StudentPhase) Exit(ctx context.Context) {
	logger.FromContext(ctx).WithPrefix("session").Debug("student %s leaving", p.username)
}

// DisplayHelp lists the subjects and the student commands, plus the
// administrator commands for admins.
func (p *StudentPhase) DisplayHelp() {
	out := p.ctrl.app.Console
	out.WriteLine("Welcome to Fergus' Quiz, %s", p.fullName)
	out.WriteLine("")
	out.WriteLine("Available Subjects:")
	for _, s := range p.ctrl.app.Catalog.All() {
		out.WriteLine("  %s (%s)", s.ID, s.Name)
	}
	for _, line := range []string{
		"",
		"Commands:",
		"  quiz <subject> <difficulty>",
		"    Take a quiz, difficulty is one of easy, medium or hard",
		"  logout",
		"    Logs the student out",
		"  help",
		"    Shows this message",
		"  exit",
		"    Exits the program",
	} {
		out.WriteLine("%s", line)
	}
	if p.admin {
		out.WriteLine("")
		out.WriteLine("Administrator Commands:")
		out.WriteLine("  report -g <student|quiz> [-o <out.txt>] [-s <username>] [-q <subject:difficulty>]")
	}
}

// Execute re-reads the logged-in student from the roster and dispatches line
// on their behalf.
func (p *StudentPhase) Execute(ctx context.Context, line string) error {
	student, ok := p.ctrl.app.Roster.Find(p.username)
	if !ok {
		return errors.NewLookupError("Invalid student selection!")
	}
	return p.registry.Dispatch(ctx, student, line)
}

func (p *StudentPhase) quiz(ctx context.Context, student models.Student, a args.Args) error {
	if a.Len() != 2 {
		return errors.NewUsageError(quizUsage)
	}
	subject, ok := p.ctrl.app.Catalog.Lookup(a.Positional[0])
	if !ok {
		return errors.NewLookupError(quizSelection)
	}
	d, ok := models.ParseDifficulty(a.Positional[1])
	if !ok {
		return errors.NewLookupError(quizSelection)
	}

	res, err := p.ctrl.app.Quiz.Run(ctx, student, subject, d)
	if err != nil {
		return err
	}
	for _, line := range quiz.Summary(res) {
		p.ctrl.app.Console.WriteLine("%s", line)
	}
	return nil
}

func (p *StudentPhase) logout(ctx context.Context, student models.Student, _ args.Args) error {
	logger.FromContext(ctx).WithPrefix("session").Info("student %s logged out", student.Username)
	p.ctrl.Transition(ctx, NewLoginPhase(p.ctrl))
	return nil
}

// report is only registered for administrators. Nothing is written unless
// the report was generated in full.
func (p *StudentPhase) report(ctx context.Context, _ models.Student, a args.Args) error {
	reports := p.ctrl.app.Reports
	rep, err := reports.Generate(ctx, a)
	if err != nil {
		return err
	}
	if err := reports.Write(rep); err != nil {
		return err
	}
	p.ctrl.app.Console.WriteLine("Report written to %s", rep.Path)
	return nil
}
