package models

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Student is a registered user of the quiz. Attempts only ever grow.
type Student struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	YearGroup    string    `json:"year_group"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	Attempts     []Attempt `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudentParams are the inputs to NewStudent. Username is derived from the
// full name and age when left empty.
type StudentParams struct {
	Username     string
	FullName     string `validate:"required,min=3"`
	Age          int    `validate:"gte=1,lte=150"`
	YearGroup    string `validate:"required"`
	PasswordHash string `validate:"required"`
	Admin        bool
}

// NewStudent validates params and builds a Student with no attempts.
func NewStudent(params StudentParams) (*Student, error) {
	params.FullName = strings.TrimSpace(params.FullName)
	params.YearGroup = strings.TrimSpace(params.YearGroup)
	if err := validateParams(params); err != nil {
		return nil, err
	}
	username := params.Username
	if username == "" {
		username = DeriveUsername(params.FullName, params.Age)
	}
	return &Student{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     params.FullName,
		Age:          params.Age,
		YearGroup:    params.YearGroup,
		PasswordHash: params.PasswordHash,
		Admin:        params.Admin,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// DeriveUsername is the first three non-space characters of the full name
// followed by the age, e.g. "Jamie Mansfield", 17 -> "Jam17" and
// "Li Wei", 15 -> "LiW15". The result never contains whitespace.
func DeriveUsername(fullName string, age int) string {
	runes := make([]rune, 0, 3)
	for _, r := range fullName {
		if unicode.IsSpace(r) {
			continue
		}
		runes = append(runes, r)
		if len(runes) == 3 {
			break
		}
	}
	return string(runes) + strconv.Itoa(age)
}

// WithAttempt returns a copy of the student with a appended. The receiver's
// attempt slice is never shared with the copy.
func (s Student) WithAttempt(a Attempt) Student {
	attempts := make([]Attempt, len(s.Attempts), len(s.Attempts)+1)
	copy(attempts, s.Attempts)
	s.Attempts = append(attempts, a)
	return s
}

// AttemptsFor returns the student's attempts on the given quiz, oldest first.
func (s Student) AttemptsFor(subjectID string, d Difficulty) []Attempt {
	var out []Attempt
	for _, a := range s.Attempts {
		if a.Matches(subjectID, d) {
			out = append(out, a)
		}
	}
	return out
}
