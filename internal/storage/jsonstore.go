package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/habitquest/internal/model"
)

// ErrCorrupt marks a state file that exists but does not decode. Loading a
// corrupt file recovers to defaults (destructive); any other read error leaves
// the caller's in-memory state untouched (non-destructive). The asymmetry is
// intentional.
var ErrCorrupt = errors.New("storage: state file is corrupt")

// Store persists the whole application state to a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

type taskRecord struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}

type habitRecord struct {
	Description    string          `json:"description"`
	Frequency      string          `json:"frequency"`
	Goal           string          `json:"goal"`
	CompletedDates map[string]bool `json:"completed_dates"`
}

type profileRecord struct {
	Name            string  `json:"name"`
	Level           int     `json:"level"`
	Experience      int     `json:"experience"`
	QuestsCompleted int     `json:"quests_completed"`
	AvatarPath      *string `json:"avatar_path"`
	BirthYear       *int    `json:"birth_year"`
}

type stateDocument struct {
	Tasks       []taskRecord  `json:"tasks"`
	Habits      []habitRecord `json:"habits"`
	UserProfile profileRecord `json:"user_profile"`
}

// Save writes the whole state as one indented JSON document, dates as
// YYYY-MM-DD strings. The file is overwritten in place; there is no temp-file
// rename and no backup.
func (s *Store) Save(tasks []model.Task, habits []model.Habit, profile model.UserProfile) error {
	doc := stateDocument{
		Tasks:       make([]taskRecord, 0, len(tasks)),
		Habits:      make([]habitRecord, 0, len(habits)),
		UserProfile: encodeProfile(profile),
	}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, taskRecord{
			Description: t.Description,
			DueDate:     model.FormatDate(t.DueDate),
			Completed:   t.Completed,
		})
	}
	for _, h := range habits {
		dates := h.CompletedDates
		if dates == nil {
			dates = map[string]bool{}
		}
		doc.Habits = append(doc.Habits, habitRecord{
			Description:    h.Description,
			Frequency:      string(h.Frequency),
			Goal:           h.Goal,
			CompletedDates: dates,
		})
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("storage: write state: %w", err)
	}
	return nil
}

// Load reads the whole state back. A missing file yields empty collections and
// a default profile with a nil error. A file that does not decode yields the
// same defaults plus an error wrapping ErrCorrupt, so the caller can tell the
// destructive case apart from an ordinary read failure.
func (s *Store) Load() ([]model.Task, []model.Habit, model.UserProfile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, []model.Habit{}, model.DefaultProfile(), nil
		}
		return nil, nil, model.UserProfile{}, fmt.Errorf("storage: read state: %w", err)
	}

	var doc stateDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []model.Task{}, []model.Habit{}, model.DefaultProfile(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	tasks := make([]model.Task, 0, len(doc.Tasks))
	for _, rec := range doc.Tasks {
		due, err := model.ParseDate(rec.DueDate)
		if err != nil {
			return []model.Task{}, []model.Habit{}, model.DefaultProfile(),
				fmt.Errorf("%w: task %q: %v", ErrCorrupt, rec.Description, err)
		}
		tasks = append(tasks, model.Task{
			Description: rec.Description,
			DueDate:     due,
			Completed:   rec.Completed,
		})
	}

	habits := make([]model.Habit, 0, len(doc.Habits))
	for _, rec := range doc.Habits {
		dates := rec.CompletedDates
		if dates == nil {
			dates = make(map[string]bool)
		}
		habits = append(habits, model.Habit{
			Description:    rec.Description,
			Frequency:      model.Frequency(rec.Frequency),
			Goal:           rec.Goal,
			CompletedDates: dates,
		})
	}

	return tasks, habits, decodeProfile(doc.UserProfile), nil
}

func encodeProfile(p model.UserProfile) profileRecord {
	rec := profileRecord{
		Name:            p.Name,
		Level:           p.Level,
		Experience:      p.Experience,
		QuestsCompleted: p.QuestsCompleted,
	}
	if p.AvatarPath != "" {
		path := p.AvatarPath
		rec.AvatarPath = &path
	}
	if p.BirthYear != 0 {
		year := p.BirthYear
		rec.BirthYear = &year
	}
	return rec
}

// decodeProfile tolerates missing fields by falling back to profile defaults.
func decodeProfile(rec profileRecord) model.UserProfile {
	p := model.DefaultProfile()
	if rec.Name != "" {
		p.Name = rec.Name
	}
	if rec.Level >= 1 {
		p.Level = rec.Level
	}
	if rec.Experience > 0 {
		p.Experience = rec.Experience
	}
	if rec.QuestsCompleted > 0 {
		p.QuestsCompleted = rec.QuestsCompleted
	}
	if rec.AvatarPath != nil {
		p.AvatarPath = *rec.AvatarPath
	}
	if rec.BirthYear != nil {
		p.BirthYear = *rec.BirthYear
	}
	return p
}
