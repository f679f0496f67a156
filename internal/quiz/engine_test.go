package quiz_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/fergusquiz/internal/console"
	"github.com/vytor/fergusquiz/internal/errors"
	"github.com/vytor/fergusquiz/internal/models"
	"github.com/vytor/fergusquiz/internal/quiz"
	"github.com/vytor/fergusquiz/internal/roster"
	"github.com/vytor/fergusquiz/internal/testutil"
	"github.com/vytor/fergusquiz/internal/testutil/mocks"
)

func maths() models.Subject {
	return models.Subject{
		ID:   "maths",
		Name: "Mathematics",
		Questions: map[models.Difficulty][]models.Question{
			models.Easy: {
				{Title: "1 + 1?", Answers: []string{"2", "3"}, CorrectAnswer: 0},
				{Title: "2 * 3?", Answers: []string{"5", "6"}, CorrectAnswer: 1},
				{Title: "9 - 4?", Answers: []string{"5", "4"}, CorrectAnswer: 0},
			},
		},
	}
}

func setup(t *testing.T) (*roster.Roster, *mocks.MockRosterStore, models.Student) {
	t.Helper()
	ada := testutil.Student("Ada16", "Ada Lovelace", true)
	store := new(mocks.MockRosterStore)
	store.On("LoadAll", mock.Anything).Return([]models.Student{ada}, nil)
	r, err := roster.Load(context.Background(), store)
	require.NoError(t, err)
	return r, store, ada
}

func TestScore(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for correct := 0; correct <= total; correct++ {
			got, err := quiz.Score(correct, total)
			require.NoError(t, err)

			want := (200*correct + total) / (2 * total) // round half up on non-negative values
			assert.Equal(t, want, got, "%d/%d", correct, total)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}

	got, _ := quiz.Score(2, 3)
	assert.Equal(t, 67, got)
	got, _ = quiz.Score(1, 8)
	assert.Equal(t, 13, got)

	_, err := quiz.Score(0, 0)
	assert.Error(t, err)
}

func TestRun_ScoresAndRecords(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	c := console.NewScripted("0", "0", " 0 ")

	res, err := quiz.NewEngine(c, r).Run(context.Background(), ada, maths(), models.Easy)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 3, res.Total)
	assert.False(t, res.Aborted)
	assert.Equal(t, 67, res.Attempt.Percentage)
	assert.Equal(t, "maths", res.Attempt.SubjectID)
	assert.Equal(t, models.Easy, res.Attempt.Difficulty)
	assert.Len(t, res.Student.Attempts, 1)

	stored, _ := r.Find("Ada16")
	require.Len(t, stored.Attempts, 1)
	assert.Equal(t, 67, stored.Attempts[0].Percentage)

	assert.Equal(t, []string{
		"1 + 1?", "0 | 2", "1 | 3", "Your answer:", "You answered correctly!",
		"2 * 3?", "0 | 5", "1 | 6", "Your answer:", "You answered incorrectly!",
		"9 - 4?", "0 | 5", "1 | 4", "Your answer:", "You answered correctly!",
	}, c.Lines())
}

func TestRun_Deterministic(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)

	var percentages []int
	for i := 0; i < 3; i++ {
		res, err := quiz.NewEngine(console.NewScripted("0", "1", "1"), r).Run(context.Background(), ada, maths(), models.Easy)
		require.NoError(t, err)
		percentages = append(percentages, res.Attempt.Percentage)
	}
	assert.Equal(t, []int{67, 67, 67}, percentages)

	stored, _ := r.Find("Ada16")
	assert.Len(t, stored.Attempts, 3)
}

func TestRun_EmptyQuestionBank(t *testing.T) {
	r, store, ada := setup(t)
	c := console.NewScripted("0")

	_, err := quiz.NewEngine(c, r).Run(context.Background(), ada, maths(), models.Hard)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyQuestionBank))

	assert.Empty(t, c.Lines(), "nothing is asked before the bank is checked")
	assert.Equal(t, 1, c.Remaining())
	store.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestRun_ReadFailureStillRecords(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	c := console.NewScripted("0").FailWith(stderrors.New("stdin closed"))

	res, err := quiz.NewEngine(c, r).Run(context.Background(), ada, maths(), models.Easy)
	require.NoError(t, err)

	assert.True(t, res.Aborted)
	assert.Equal(t, 1, res.Answered)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 33, res.Attempt.Percentage)

	stored, _ := r.Find("Ada16")
	assert.Len(t, stored.Attempts, 1)
}

func TestRun_NonNumericAnswerAborts(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	c := console.NewScripted("0", "six", "0")

	res, err := quiz.NewEngine(c, r).Run(context.Background(), ada, maths(), models.Easy)
	require.NoError(t, err)

	assert.True(t, res.Aborted)
	assert.Equal(t, 33, res.Attempt.Percentage)
	assert.Equal(t, 1, c.Remaining())
	assert.Contains(t, c.Lines(), "That is not a valid answer, ending the quiz.")
}

func TestRun_CancelledContext(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := quiz.NewEngine(console.NewScripted("0", "1", "0"), r).Run(ctx, ada, maths(), models.Easy)
	require.NoError(t, err)
	assert.True(t, res.Aborted)
	assert.Equal(t, 0, res.Attempt.Percentage)
}

func TestRun_PersistenceFailure(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(stderrors.New("disk full"))

	_, err := quiz.NewEngine(console.NewScripted("0", "1", "0"), r).Run(context.Background(), ada, maths(), models.Easy)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePersistence))

	stored, _ := r.Find("Ada16")
	assert.Empty(t, stored.Attempts)
}

func TestSummary(t *testing.T) {
	res := quiz.Result{
		Attempt: models.Attempt{Percentage: 100},
		Correct: 3, Answered: 3, Total: 3,
	}
	assert.Equal(t, []string{"Well Done!", "You achieved a A*!", "You scored 3/3 (100%)"}, quiz.Summary(res))

	res.Aborted = true
	res.Answered = 1
	lines := quiz.Summary(res)
	assert.Equal(t, fmt.Sprintf("The quiz ended after %d of %d questions.", 1, 3), lines[0])
}

func TestRun_TitleIsPrintedVerbatim(t *testing.T) {
	r, store, ada := setup(t)
	store.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	subject := models.Subject{
		ID: "maths",
		Questions: map[models.Difficulty][]models.Question{
			models.Easy: {{Title: "What is 15% of 200?", Answers: []string{"30", "15"}, CorrectAnswer: 0}},
		},
	}
	c := console.NewScripted("0")

	_, err := quiz.NewEngine(c, r).Run(context.Background(), ada, subject, models.Easy)
	require.NoError(t, err)

	assert.Equal(t, "What is 15% of 200?", c.Lines()[0])
	assert.Equal(t, "0 | 30", c.Lines()[1])
}
