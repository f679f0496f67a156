package session

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/command"
	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
)

const (
	loginUsage       = "Invalid input. login <username> <password>"
	loginFailed      = "Username or Password is incorrect."
	signupCancelled  = "Signup cancelled."
	signupInvalidAge = "Your age must be a whole number, signup cancelled."

	signupPasswordSpaces = "Your password cannot contain spaces, signup cancelled."
)

// LoginPhase is the phase before authentication. Its commands run on behalf
// of a Guest.
type LoginPhase struct {
	ctrl     *Controller
	registry *command.Registry[Guest]
}

// NewLoginPhase registers help, exit, login and signup.
func NewLoginPhase(ctrl *Controller) *LoginPhase {
	p := &LoginPhase{
		ctrl:     ctrl,
		registry: command.NewRegistry[Guest](ctrl.app.Console),
	}
	registerCommon(p.registry, ctrl)
	p.registry.
		Register("login", p.login).
		Register("signup", p.signup)
	return p
}

// Name identifies the phase in logs.
func (p *LoginPhase) Name() string { return "login" }

// Enter shows the login help.
func (p *LoginPhase) Enter(ctx context.Context) {
	p.DisplayHelp()
}

// Exit has nothing to release.
func (p *LoginPhase) Exit(ctx context.Context) {}

// DisplayHelp lists the commands available before login.
func (p *LoginPhase) DisplayHelp() {
	for _, line := range []string{
		"Fergus' Quiz",
		"",
		"Commands:",
		"  login <username> <password>",
		"    Allows a user to login to Fergus' Quiz",
		"  signup",
		"    Allows a student to signup to Fergus' Quiz",
		"  help",
		"    Shows this message",
		"  exit",
		"    Exits the program",
	} {
		p.ctrl.app.Console.WriteLine("%s", line)
	}
}

// Execute dispatches line on behalf of a guest.
func (p *LoginPhase) Execute(ctx context.Context, line string) error {
	return p.registry.Dispatch(ctx, Guest{}, line)
}

// login checks the password and moves to the student phase. An unknown
// username and a wrong password print the same message.
func (p *LoginPhase) login(ctx context.Context, _ Guest, a args.Args) error {
	log := logger.FromContext(ctx).WithPrefix("session")
	if a.Len() != 2 {
		return errors.NewUsageError(loginUsage)
	}
	username, password := a.Positional[0], a.Positional[1]

	student, ok := p.ctrl.app.Roster.Find(username)
	if !ok || !p.ctrl.app.Hasher.Verify(password, student.PasswordHash) {
		log.Info("failed login attempt")
		return errors.NewLookupError(loginFailed)
	}

	log.Info("student %s logged in", student.Username)
	p.ctrl.Transition(ctx, NewStudentPhase(p.ctrl, student))
	return nil
}

// signup asks for the student's details one line at a time. The first
// student ever registered becomes the administrator.
func (p *LoginPhase) signup(ctx context.Context, _ Guest, _ args.Args) error {
	app := p.ctrl.app
	admin := app.Roster.Len() == 0

	fullName, err := p.prompt("Enter your full name:")
	if err != nil {
		return err
	}
	ageText, err := p.prompt("Enter your age:")
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageText)
	if err != nil {
		return errors.NewUsageError(signupInvalidAge)
	}
	yearGroup, err := p.prompt("Enter your year group:")
	if err != nil {
		return err
	}
	password, err := p.prompt("Enter your password:")
	if err != nil {
		return err
	}
	if password == "" {
		return errors.NewUsageError("Your password cannot be empty, signup cancelled.")
	}
	// login reads the password as a single token.
	if strings.ContainsFunc(password, unicode.IsSpace) {
		return errors.NewUsageError(signupPasswordSpaces)
	}

	digest, err := app.Hasher.Hash(password)
	if err != nil {
		return err
	}
	student, err := models.NewStudent(models.StudentParams{
		FullName:     fullName,
		Age:          age,
		YearGroup:    yearGroup,
		PasswordHash: digest,
		Admin:        admin,
	})
	if err != nil {
		return err
	}
	student.Username = app.Roster.UniqueUsername(student.Username)

	if err := app.Roster.Register(ctx, *student); err != nil {
		return err
	}
	app.Console.WriteLine("Your username is: %s", student.Username)

	p.ctrl.Transition(ctx, NewStudentPhase(p.ctrl, *student))
	return nil
}

func (p *LoginPhase) prompt(question string) (string, error) {
	p.ctrl.app.Console.WriteLine("%s", question)
	line, err := p.ctrl.app.Console.ReadLine()
	if err != nil {
		return "", errors.NewUsageError(signupCancelled)
	}
	return strings.TrimSpace(line), nil
}
