// Package roster holds the registered students in memory and keeps the
// durable store in step with every mutation.
package roster

import (
	"context"
	"fmt"

	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/repository"
)

// Roster is the in-memory list of students, in registration order.
//
// Mutations build the next roster, save it in full and only then replace the
// in-memory copy, so a failed save leaves the roster exactly as it was.
type Roster struct {
	store    repository.RosterStore
	students []models.Student
}

// Load reads every student from store.
func Load(ctx context.Context, store repository.RosterStore) (*Roster, error) {
	log := logger.FromContext(ctx).WithPrefix("roster")

	students, err := store.LoadAll(ctx)
	if err != nil {
		log.Error("failed to load roster: %v", err)
		return nil, errors.NewPersistenceError("load roster", err)
	}
	log.Info("roster loaded with %d students", len(students))
	return &Roster{store: store, students: students}, nil
}

// Len is the number of registered students.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns a copy of the roster in registration order.
func (r *Roster) Students() []models.Student {
	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Find returns the student with the given username.
func (r *Roster) Find(username string) (models.Student, bool) {
	if i := r.indexOf(username); i >= 0 {
		return r.students[i], true
	}
	return models.Student{}, false
}

func (r *Roster) indexOf(username string) int {
	for i := range r.students {
		if r.students[i].Username == username {
			return i
		}
	}
	return -1
}

// UniqueUsername returns base if it is free, otherwise base with the first
// free "_N" suffix starting at 2.
func (r *Roster) UniqueUsername(base string) string {
	if r.indexOf(base) < 0 {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", base, n)
		if r.indexOf(candidate) < 0 {
			return candidate
		}
	}
}

// Register appends s and persists the roster.
func (r *Roster) Register(ctx context.Context, s models.Student) error {
	if r.indexOf(s.Username) >= 0 {
		return errors.NewValidationError("username", fmt.Sprintf("%s is already taken", s.Username))
	}

	next := make([]models.Student, len(r.students), len(r.students)+1)
	copy(next, r.students)
	next = append(next, s)

	if err := r.commit(ctx, next, "register student"); err != nil {
		return err
	}
	logger.FromContext(ctx).WithPrefix("roster").Info("registered student %s (admin=%t)", s.Username, s.Admin)
	return nil
}

// RecordAttempt appends a to the named student's history, persists the
// roster and returns the updated student.
func (r *Roster) RecordAttempt(ctx context.Context, username string, a models.Attempt) (models.Student, error) {
	i := r.indexOf(username)
	if i < 0 {
		return models.Student{}, errors.NewLookupError(fmt.Sprintf("Unknown student %s!", username))
	}

	next := r.Students()
	next[i] = next[i].WithAttempt(a)

	if err := r.commit(ctx, next, "save attempt"); err != nil {
		return models.Student{}, err
	}
	logger.FromContext(ctx).WithPrefix("roster").Info("recorded attempt for %s: %s:%s %d%%", username, a.SubjectID, a.Difficulty, a.Percentage)
	return next[i], nil
}

// Flush writes the current roster again. It is called on the way out so that
// every termination path ends with the store matching memory.
func (r *Roster) Flush(ctx context.Context) error {
	return r.commit(ctx, r.Students(), "flush roster")
}

// commit saves next and then adopts it. The save is detached from ctx
// cancellation: once started it runs to completion.
func (r *Roster) commit(ctx context.Context, next []models.Student, op string) error {
	if err := r.store.SaveAll(context.WithoutCancel(ctx), next); err != nil {
		logger.FromContext(ctx).WithPrefix("roster").Error("failed to %s: %v", op, err)
		return errors.NewPersistenceError(op, err)
	}
	r.students = next
	return nil
}
