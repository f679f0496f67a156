package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/repository"
)

type rosterRepository struct {
	db *sql.DB
}

// NewRosterStore creates a RosterStore backed by SQLite
func NewRosterStore(db *sql.DB) repository.RosterStore {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) LoadAll(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("roster_repo")
	log.Debug("loading roster")

	query, args, err := sqlBuilder.Select(
		"id", "username", "full_name", "age", "year_group", "password_hash", "admin", "created_at",
	).From("students").OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list students: %v", err)
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	index := make(map[string]int)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Username, &s.FullName, &s.Age, &s.YearGroup, &s.PasswordHash, &s.Admin, &s.CreatedAt); err != nil {
			log.Error("failed to scan student row: %v", err)
			return nil, err
		}
		index[s.ID] = len(students)
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAttempts(ctx, students, index); err != nil {
		return nil, err
	}

	log.Debug("loaded %d students", len(students))
	return students, nil
}

func (r *rosterRepository) loadAttempts(ctx context.Context, students []models.Student, index map[string]int) error {
	log := logger.FromContext(ctx).WithPrefix("roster_repo")

	query, args, err := sqlBuilder.Select(
		"student_id", "subject_id", "difficulty", "percentage", "taken_at",
	).From("attempts").OrderBy("student_id ASC", "seq ASC").ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var studentID string
		var a models.Attempt
		if err := rows.Scan(&studentID, &a.SubjectID, &a.Difficulty, &a.Percentage, &a.TakenAt); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return err
		}
		i, ok := index[studentID]
		if !ok {
			log.Warn("attempt references unknown student %s, skipping", studentID)
			continue
		}
		students[i].Attempts = append(students[i].Attempts, a)
	}
	return rows.Err()
}

func (r *rosterRepository) SaveAll(ctx context.Context, students []models.Student) error {
	log := logger.FromContext(ctx).WithPrefix("roster_repo")
	log.Debug("saving roster of %d students", len(students))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
			log.Error("failed to clear attempts: %v", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM students`); err != nil {
			log.Error("failed to clear students: %v", err)
			return err
		}

		for pos, s := range students {
			if err := insertStudent(ctx, tx, pos, s); err != nil {
				log.Error("failed to insert student %s: %v", s.Username, err)
				return err
			}
		}

		log.Debug("roster saved")
		return nil
	})
}

func insertStudent(ctx context.Context, tx *sql.Tx, pos int, s models.Student) error {
	query, args, err := sqlBuilder.Insert("students").
		Columns("id", "position", "username", "full_name", "age", "year_group", "password_hash", "admin", "created_at").
		Values(s.ID, pos, s.Username, s.FullName, s.Age, s.YearGroup, s.PasswordHash, s.Admin, s.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if len(s.Attempts) == 0 {
		return nil
	}

	insert := sqlBuilder.Insert("attempts").
		Columns("student_id", "seq", "subject_id", "difficulty", "percentage", "taken_at")
	for seq, a := range s.Attempts {
		insert = insert.Values(s.ID, seq, a.SubjectID, string(a.Difficulty), a.Percentage, a.TakenAt)
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert attempts: %w", err)
	}
	return nil
}

// CountAttempts returns how many stored attempts match the quiz. An empty
// subjectID or difficulty matches everything.
func CountAttempts(ctx context.Context, db *sql.DB, subjectID string, d models.Difficulty) (int, error) {
	q := sqlBuilder.Select("COUNT(*)").From("attempts")
	if subjectID != "" {
		q = q.Where(squirrel.Eq{"subject_id": subjectID})
	}
	if d != "" {
		q = q.Where(squirrel.Eq{"difficulty": string(d)})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}
