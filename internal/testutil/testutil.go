package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/fergusquiz/internal/db"
	"github.com/vytor/fergusquiz/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	d, err := db.Open(":memory:")
	require.NoError(t, err)
	return d.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// Student builds a student fixture with the given attempts. The password hash
// is the plaintext prefixed with "hashed:", matching PlainHasher.
func Student(username, fullName string, admin bool, attempts ...models.Attempt) models.Student {
	return models.Student{
		ID:           "id-" + username,
		Username:     username,
		FullName:     fullName,
		Age:          16,
		YearGroup:    "11",
		PasswordHash: "hashed:secret",
		Admin:        admin,
		Attempts:     attempts,
	}
}

// Attempt builds an attempt fixture.
func Attempt(subjectID string, d models.Difficulty, percentage int) models.Attempt {
	return models.Attempt{SubjectID: subjectID, Difficulty: d, Percentage: percentage}
}

// PlainHasher is a fast, deterministic PasswordHasher for tests.
type PlainHasher struct{}

func (PlainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (PlainHasher) Verify(plaintext, digest string) bool { return digest == "hashed:"+plaintext }
