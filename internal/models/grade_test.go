package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/fergusquiz/internal/models"
)

func TestGradeOf_Boundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{0, "F"},
		{19, "F"},
		{19.99, "F"},
		{20, "D"},
		{39, "D"},
		{40, "C"},
		{59, "C"},
		{60, "B"},
		{79, "B"},
		{80, "A"},
		{90, "A"},
		{99, "A"},
		{99.5, "A"},
		{100, "A*"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, models.GradeOf(tt.percentage).Text, "percentage %v", tt.percentage)
	}
}

func TestGradeOf_TotalAndMonotonic(t *testing.T) {
	valid := map[string]bool{"A*": true, "A": true, "B": true, "C": true, "D": true, "F": true}

	prev := models.GradeOf(0)
	for p := 0; p <= 100; p++ {
		g := models.GradeOf(float64(p))
		assert.True(t, valid[g.Text], "unexpected grade %q at %d", g.Text, p)
		assert.GreaterOrEqual(t, g.LowerBound, prev.LowerBound, "grade decreased at %d", p)
		prev = g
	}
}

func TestDifficulty_Parse(t *testing.T) {
	d, ok := models.ParseDifficulty("medium")
	assert.True(t, ok)
	assert.Equal(t, models.Medium, d)
	assert.Equal(t, 3, d.AnswerCount())

	_, ok = models.ParseDifficulty("Medium")
	assert.False(t, ok)

	assert.Equal(t, 2, models.Easy.AnswerCount())
	assert.Equal(t, 4, models.Hard.AnswerCount())
}
