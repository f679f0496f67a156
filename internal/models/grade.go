package models

// Grade is the letter band derived from a percentage. It is never stored.
type Grade struct {
	Text       string
	LowerBound int
}

var (
	GradeAStar = Grade{Text: "A*", LowerBound: 100}
	GradeA     = Grade{Text: "A", LowerBound: 80}
	GradeB     = Grade{Text: "B", LowerBound: 60}
	GradeC     = Grade{Text: "C", LowerBound: 40}
	GradeD     = Grade{Text: "D", LowerBound: 20}
	GradeF     = Grade{Text: "F", LowerBound: 0}
)

// grades is ordered highest to lowest; the first inclusive lower bound wins.
var grades = []Grade{GradeAStar, GradeA, GradeB, GradeC, GradeD, GradeF}

// GradeOf maps a percentage to its grade.
func GradeOf(percentage float64) Grade {
	for _, g := range grades {
		if percentage >= float64(g.LowerBound) {
			return g
		}
	}
	return GradeF
}

func (g Grade) String() string {
	return g.Text
}
