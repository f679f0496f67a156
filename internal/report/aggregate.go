package report

import "github.com/vytor/fergusquiz/internal/models"

// QuizSummary aggregates every attempt on one quiz across the roster.
// Average, Max and AchievedBy are only meaningful when Count > 0.
type QuizSummary struct {
	SubjectID  string
	Difficulty models.Difficulty
	Count      int
	Average    float64
	Max        int
	// AchievedBy lists, in roster order, the full name of each student with at
	// least one attempt scoring Max. A student appears once however many
	// attempts reached it.
	AchievedBy []string
}

// FindStudent returns the student with the given username.
func FindStudent(students []models.Student, username string) (models.Student, bool) {
	for _, s := range students {
		if s.Username == username {
			return s, true
		}
	}
	return models.Student{}, false
}

// SummarizeQuiz gathers the attempts matching subjectID and d from every
// student. Attempts on subjects no longer in the catalog are simply
// matched or not by id.
func SummarizeQuiz(students []models.Student, subjectID string, d models.Difficulty) QuizSummary {
	sum := QuizSummary{SubjectID: subjectID, Difficulty: d}

	total := 0
	for _, s := range students {
		for _, a := range s.AttemptsFor(subjectID, d) {
			if sum.Count == 0 || a.Percentage > sum.Max {
				sum.Max = a.Percentage
			}
			total += a.Percentage
			sum.Count++
		}
	}
	if sum.Count == 0 {
		return sum
	}
	sum.Average = float64(total) / float64(sum.Count)

	for _, s := range students {
		for _, a := range s.AttemptsFor(subjectID, d) {
			if a.Percentage == sum.Max {
				sum.AchievedBy = append(sum.AchievedBy, s.FullName)
				break
			}
		}
	}
	return sum
}
