package models

// Question is a single multiple-choice question.
type Question struct {
	Title         string   `yaml:"title" json:"title"`
	Answers       []string `yaml:"answers" json:"answers"`
	CorrectAnswer int      `yaml:"correct_answer" json:"correct_answer"`
}

// IsCorrect reports whether the zero-based answer index is the correct one.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}

// Subject is a quiz subject with its question bank partitioned by difficulty.
type Subject struct {
	ID        string
	Name      string
	Questions map[Difficulty][]Question
}

// QuestionsFor returns the ordered questions for d; the result may be empty.
func (s Subject) QuestionsFor(d Difficulty) []Question {
	return s.Questions[d]
}
