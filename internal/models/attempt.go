package models

import "time"

// Attempt is the immutable outcome of one completed quiz.
type Attempt struct {
	SubjectID  string     `json:"subject_id"`
	Difficulty Difficulty `json:"difficulty"`
	Percentage int        `json:"percentage"`
	TakenAt    time.Time  `json:"taken_at"`
}

// AttemptParams are the inputs to NewAttempt.
type AttemptParams struct {
	SubjectID  string     `validate:"required"`
	Difficulty Difficulty `validate:"oneof=easy medium hard"`
	Percentage int        `validate:"gte=0,lte=100"`
	TakenAt    time.Time
}

// NewAttempt validates params and builds an Attempt. A zero TakenAt is
// replaced with the current time.
func NewAttempt(params AttemptParams) (Attempt, error) {
	if err := validateParams(params); err != nil {
		return Attempt{}, err
	}
	takenAt := params.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}
	return Attempt{
		SubjectID:  params.SubjectID,
		Difficulty: params.Difficulty,
		Percentage: params.Percentage,
		TakenAt:    takenAt,
	}, nil
}

// Grade returns the grade derived from the attempt's percentage.
func (a Attempt) Grade() Grade {
	return GradeOf(float64(a.Percentage))
}

// Matches reports whether the attempt was taken on the given quiz.
func (a Attempt) Matches(subjectID string, d Difficulty) bool {
	return a.SubjectID == subjectID && a.Difficulty == d
}
