// Package catalog loads the subjects and their question banks.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/vytor/fergusquiz/internal/logger"
	"github.com/vytor/fergusquiz/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is the read-only set of subjects loaded at startup.
type Catalog interface {
	Lookup(id string) (models.Subject, bool)
	All() []models.Subject
}

// Static is an in-memory Catalog.
type Static struct {
	subjects map[string]models.Subject
}

// NewStatic builds a catalog from subjects. Later duplicates of an id win.
func NewStatic(subjects ...models.Subject) *Static {
	c := &Static{subjects: make(map[string]models.Subject, len(subjects))}
	for _, s := range subjects {
		c.subjects[s.ID] = s
	}
	return c
}

// Lookup returns the subject with the given id.
func (c *Static) Lookup(id string) (models.Subject, bool) {
	s, ok := c.subjects[id]
	return s, ok
}

// All returns every subject ordered by id.
func (c *Static) All() []models.Subject {
	out := make([]models.Subject, 0, len(c.subjects))
	for _, s := range c.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type subjectsFile struct {
	Subjects []subjectEntry `yaml:"subjects"`
}

type subjectEntry struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	DefinitionFile string `yaml:"definition_file"`

	Easy   []models.Question `yaml:"easy"`
	Medium []models.Question `yaml:"medium"`
	Hard   []models.Question `yaml:"hard"`
}

type questionBank struct {
	Easy   []models.Question `yaml:"easy"`
	Medium []models.Question `yaml:"medium"`
	Hard   []models.Question `yaml:"hard"`
}

func (b questionBank) byDifficulty() map[models.Difficulty][]models.Question {
	return map[models.Difficulty][]models.Question{
		models.Easy:   b.Easy,
		models.Medium: b.Medium,
		models.Hard:   b.Hard,
	}
}

// Load reads the subjects file at path. When the file does not exist an empty
// one is written and an empty catalog returned. Each subject either lists its
// questions inline or names a definition file, resolved relative to path.
func Load(path string) (*Static, error) {
	log := logger.Default().WithPrefix("catalog")

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("subjects file %s not found, creating an empty one", path)
		if err := os.WriteFile(path, []byte("subjects: []\n"), 0o644); err != nil {
			return nil, fmt.Errorf("create subjects file: %w", err)
		}
		return NewStatic(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read subjects file: %w", err)
	}

	var file subjectsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse subjects file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	subjects := make([]models.Subject, 0, len(file.Subjects))
	for _, entry := range file.Subjects {
		if entry.ID == "" {
			return nil, fmt.Errorf("subjects file %s: subject without id", path)
		}

		bank := questionBank{Easy: entry.Easy, Medium: entry.Medium, Hard: entry.Hard}
		if entry.DefinitionFile != "" {
			defPath := entry.DefinitionFile
			if !filepath.IsAbs(defPath) {
				defPath = filepath.Join(dir, defPath)
			}
			bank, err = loadDefinitions(defPath)
			if err != nil {
				return nil, fmt.Errorf("question definitions for %s: %w", entry.ID, err)
			}
		}

		name := entry.Name
		if name == "" {
			name = entry.ID
		}
		subject := models.Subject{ID: entry.ID, Name: name, Questions: bank.byDifficulty()}
		if err := check(subject); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
		log.Debug("loaded subject %s (%d/%d/%d questions)", entry.ID, len(bank.Easy), len(bank.Medium), len(bank.Hard))
	}

	log.Info("catalog loaded with %d subjects", len(subjects))
	return NewStatic(subjects...), nil
}

func loadDefinitions(path string) (questionBank, error) {
	var bank questionBank
	raw, err := os.ReadFile(path)
	if err != nil {
		return bank, err
	}
	if err := yaml.Unmarshal(raw, &bank); err != nil {
		return bank, fmt.Errorf("parse %s: %w", path, err)
	}
	return bank, nil
}

// check rejects questions that cannot be asked. A mismatch between the number
// of answers and the difficulty's answer count is only logged.
func check(s models.Subject) error {
	log := logger.Default().WithPrefix("catalog")
	for _, d := range models.Difficulties() {
		for i, q := range s.QuestionsFor(d) {
			if q.Title == "" {
				return fmt.Errorf("%s %s question %d has no title", s.ID, d, i)
			}
			if len(q.Answers) == 0 {
				return fmt.Errorf("%s %s question %d has no answers", s.ID, d, i)
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Answers) {
				return fmt.Errorf("%s %s question %d: correct answer %d out of range", s.ID, d, i, q.CorrectAnswer)
			}
			if len(q.Answers) != d.AnswerCount() {
				log.Warn("%s %s question %d has %d answers, expected %d", s.ID, d, i, len(q.Answers), d.AnswerCount())
			}
		}
	}
	return nil
}
