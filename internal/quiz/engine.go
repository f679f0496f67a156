// Package quiz runs a single interactive quiz attempt.
package quiz

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vytor/fergusquiz/internal/console"
	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/roster"
)

// Result is the outcome of one run. Attempt is what was recorded; Correct and
// Total give the raw score. Aborted is set when input ended or was not a
// number before every question was answered.
type Result struct {
	Attempt  models.Attempt
	Student  models.Student
	Correct  int
	Answered int
	Total    int
	Aborted  bool
}

// Engine asks questions on a console and records the attempt in the roster.
type Engine struct {
	console console.Console
	roster  *roster.Roster
	now     func() time.Time
}

// NewEngine returns an Engine that prompts on c and records into r.
func NewEngine(c console.Console, r *roster.Roster) *Engine {
	return &Engine{
		console: c,
		roster:  r,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Score is round(100 * correct / total), halves rounded away from zero.
// total must be at least 1.
func Score(correct, total int) (int, error) {
	if total < 1 {
		return 0, errors.NewValidationError("total", "must be at least 1")
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}
	return int(math.Round(float64(correct) * 100 / float64(total))), nil
}

// Run asks every question of subject at difficulty d in order, one answer line
// each. An empty question bank is rejected before anything is shown. If
// reading fails, or an answer is not a number, the remaining questions are
// skipped and count as wrong; the attempt is still recorded.
func (e *Engine) Run(ctx context.Context, student models.Student, subject models.Subject, d models.Difficulty) (Result, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz").WithFields(map[string]any{
		"student": student.Username,
		"quiz":    subject.ID + ":" + d.String(),
	})

	questions := subject.QuestionsFor(d)
	if len(questions) == 0 {
		log.Warn("refusing quiz with an empty question bank")
		return Result{}, errors.NewEmptyQuestionBankError(subject.ID, d.String())
	}

	res := Result{Total: len(questions)}
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			log.Warn("quiz cancelled after %d questions: %v", i, err)
			res.Aborted = true
			break
		}

		e.ask(q)

		line, err := e.console.ReadLine()
		if err != nil {
			log.Warn("answer read failed after %d questions: %v", i, err)
			res.Aborted = true
			break
		}
		answer, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug("non-numeric answer %q", line)
			e.console.WriteLine("That is not a valid answer, ending the quiz.")
			res.Aborted = true
			break
		}

		res.Answered++
		if q.IsCorrect(answer) {
			res.Correct++
			e.console.WriteLine("You answered correctly!")
		} else {
			e.console.WriteLine("You answered incorrectly!")
		}
	}

	percentage, err := Score(res.Correct, res.Total)
	if err != nil {
		return Result{}, err
	}

	attempt, err := models.NewAttempt(models.AttemptParams{
		SubjectID:  subject.ID,
		Difficulty: d,
		Percentage: percentage,
		TakenAt:    e.now(),
	})
	if err != nil {
		return Result{}, err
	}

	updated, err := e.roster.RecordAttempt(ctx, student.Username, attempt)
	if err != nil {
		return Result{}, err
	}

	log.Info("quiz finished: %d/%d (%d%%), aborted=%t", res.Correct, res.Total, percentage, res.Aborted)
	res.Attempt = attempt
	res.Student = updated
	return res, nil
}

func (e *Engine) ask(q models.Question) {
	e.console.WriteLine("%s", q.Title)
	for i, answer := range q.Answers {
		e.console.WriteLine("%d | %s", i, answer)
	}
	e.console.WriteLine("Your answer:")
}

// Summary is the text shown to the student after a run.
func Summary(res Result) []string {
	var lines []string
	if res.Aborted {
		lines = append(lines, fmt.Sprintf("The quiz ended after %d of %d questions.", res.Answered, res.Total))
	}
	return append(lines,
		"Well Done!",
		fmt.Sprintf("You achieved a %s!", res.Attempt.Grade().Text),
		fmt.Sprintf("You scored %d/%d (%d%%)", res.Correct, res.Total, res.Attempt.Percentage),
	)
}
