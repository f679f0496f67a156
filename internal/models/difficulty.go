package models

// Difficulty is the difficulty rating of a quiz.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns every difficulty, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty resolves a difficulty from its identifier.
func ParseDifficulty(id string) (Difficulty, bool) {
	for _, d := range Difficulties() {
		if string(d) == id {
			return d, true
		}
	}
	return "", false
}

// AnswerCount is the number of answer choices shown at this difficulty.
// It is display metadata only; question banks are not checked against it.
func (d Difficulty) AnswerCount() int {
	switch d {
	case Easy:
		return 2
	case Medium:
		return 3
	case Hard:
		return 4
	default:
		return 0
	}
}

func (d Difficulty) String() string {
	return string(d)
}
