// Package report builds the administrator reports on student and quiz
// performance.
package report

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vytor/fergusquiz/internal/args"
	"github.com/vytor/fergusquiz/internal/catalog"
	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
)

// Kind selects a report generator with the -g flag.
type Kind string

const (
	KindStudent Kind = "student"
	KindQuiz    Kind = "quiz"
)

// ParseKind resolves the value of the -g flag.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindStudent, KindQuiz:
		return Kind(s), true
	}
	return "", false
}

// Roster is the view of the roster a report needs.
type Roster interface {
	Students() []models.Student
}

// Report is a rendered report and where it should be written.
type Report struct {
	Kind    Kind
	Path    string
	Content string
}

// Generator renders reports from the live roster and catalog.
type Generator struct {
	roster      Roster
	catalog     catalog.Catalog
	defaultPath string
	builders    map[Kind]func(*strings.Builder, []models.Student, args.Args) error
}

// NewGenerator returns a Generator writing to defaultPath unless -o is given.
func NewGenerator(r Roster, c catalog.Catalog, defaultPath string) *Generator {
	g := &Generator{roster: r, catalog: c, defaultPath: defaultPath}
	g.builders = map[Kind]func(*strings.Builder, []models.Student, args.Args) error{
		KindStudent: g.buildStudent,
		KindQuiz:    g.buildQuiz,
	}
	return g
}

// Generate renders the report selected by a. Missing or invalid flags yield a
// USAGE or LOOKUP error and no report.
func (g *Generator) Generate(ctx context.Context, a args.Args) (Report, error) {
	log := logger.FromContext(ctx).WithPrefix("report")

	if !a.HasFlag("g") {
		return Report{}, errors.NewUsageError("No report generator was specified!")
	}
	kind, ok := ParseKind(a.Flag("g"))
	if !ok {
		return Report{}, errors.NewUsageError("Invalid report generator selection!")
	}

	var sb strings.Builder
	sb.WriteString("Quiz Report\n")
	sb.WriteString("===========\n")
	sb.WriteString("\n")

	if err := g.builders[kind](&sb, g.roster.Students(), a); err != nil {
		log.Debug("%s report rejected: %v", kind, err)
		return Report{}, err
	}

	rep := Report{Kind: kind, Path: a.FlagOr("o", g.defaultPath), Content: sb.String()}
	log.Info("%s report generated for %s", kind, rep.Path)
	return rep, nil
}

// Write stores the report at its path, replacing any existing file.
func (g *Generator) Write(rep Report) error {
	if err := os.WriteFile(rep.Path, []byte(rep.Content), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", rep.Path, err)
	}
	return nil
}

func (g *Generator) buildStudent(sb *strings.Builder, students []models.Student, a args.Args) error {
	if !a.HasFlag("s") {
		return errors.NewUsageError("No student to produce a report on was specified!")
	}
	student, ok := FindStudent(students, a.Flag("s"))
	if !ok {
		return errors.NewLookupError("Invalid student selection!")
	}

	fmt.Fprintf(sb, "Report produced for the student: %s (%s)\n", student.FullName, student.Username)
	sb.WriteString("\n")
	sb.WriteString("## Quiz Attempts\n")
	for _, at := range student.Attempts {
		fmt.Fprintf(sb, "- %s:%s GRADE: %s\n", at.SubjectID, at.Difficulty, at.Grade().Text)
	}
	return nil
}

func (g *Generator) buildQuiz(sb *strings.Builder, students []models.Student, a args.Args) error {
	if !a.HasFlag("q") {
		return errors.NewUsageError("No quiz provided to produce a report on was specified!")
	}
	subjectID, rawDifficulty, ok := strings.Cut(a.Flag("q"), ":")
	if !ok {
		return errors.NewLookupError("Invalid quiz selection!")
	}
	subject, okSubject := g.catalog.Lookup(subjectID)
	d, okDifficulty := models.ParseDifficulty(rawDifficulty)
	if !okSubject || !okDifficulty {
		return errors.NewLookupError("Invalid quiz selection!")
	}

	fmt.Fprintf(sb, "Report produced for the quiz: %s:%s\n", subject.ID, d)
	sb.WriteString("\n")

	sum := SummarizeQuiz(students, subject.ID, d)
	if sum.Count == 0 {
		return nil
	}
	// Graded on the value shown, not the raw mean.
	average := roundPercentage(sum.Average)
	fmt.Fprintf(sb, "The average percentage attained is: %s%% (grade: %s)\n",
		formatPercentage(average), models.GradeOf(average).Text)
	fmt.Fprintf(sb, "The max percentage attained is: %d%% (grade: %s)\n",
		sum.Max, models.GradeOf(float64(sum.Max)).Text)
	fmt.Fprintf(sb, "Achieved by: %s\n", strings.Join(sum.AchievedBy, ", "))
	return nil
}

func roundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}

// formatPercentage prints at most two decimals and drops trailing zeros.
func formatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
