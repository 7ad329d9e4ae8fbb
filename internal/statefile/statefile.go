// Package statefile round-trips the full application state as a single
// portable JSON document, usable as a backup or for moving between
// machines. Imports are validated against a JSON Schema before any
// field is touched, and partial documents merge with defaults rather
// than failing.
package statefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

// Version is the current document format version.
const Version = 1

// Document is the on-disk shape.
type Document struct {
	Version      int              `json:"version"`
	ExportedAt   string           `json:"exportedAt,omitempty"`
	Tasks        []TaskRecord     `json:"tasks"`
	Subjects     []SubjectRecord  `json:"subjects"`
	Player       PlayerRecord     `json:"player"`
	Achievements map[string]int64 `json:"achievements"`
}

// TaskRecord is the serialized task shape.
type TaskRecord struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	SubjectID        string `json:"subjectId"`
	DueDate          string `json:"dueDate"`
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Completed        bool   `json:"completed"`
	CreatedAt        int64  `json:"createdAt"`
}

// SubjectRecord is the serialized subject shape.
type SubjectRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PlayerRecord is the serialized profile shape.
type PlayerRecord struct {
	XP             int            `json:"xp"`
	Level          int            `json:"level"`
	Streak         int            `json:"streak"`
	LastActiveDate string         `json:"lastActiveDate"`
	TotalPomodoros int            `json:"totalPomodoros"`
	WeeklyMinutes  map[string]int `json:"weeklyMinutes"`
	PomoDayCount   int            `json:"pomoDayCount"`
	PomoDayDate    string         `json:"pomoDayDate"`
	PomoXPTotal    int            `json:"pomoXpTotal"`
}

// Encode builds the export document from live entities.
func Encode(ts []*tasks.Task, subjects []*tasks.Subject, p *progress.Profile, ledger achievements.Ledger, now time.Time) ([]byte, error) {
	doc := Document{
		Version:      Version,
		ExportedAt:   now.UTC().Format(time.RFC3339),
		Tasks:        make([]TaskRecord, 0, len(ts)),
		Subjects:     make([]SubjectRecord, 0, len(subjects)),
		Achievements: make(map[string]int64, len(ledger)),
	}
	for _, t := range ts {
		doc.Tasks = append(doc.Tasks, TaskRecord{
			ID:               t.ID,
			Title:            t.Title,
			SubjectID:        t.SubjectID,
			DueDate:          t.DueDate,
			Priority:         string(t.Priority),
			EstimatedMinutes: t.EstimatedMinutes,
			Completed:        t.Completed,
			CreatedAt:        t.CreatedAt.Unix(),
		})
	}
	for _, s := range subjects {
		doc.Subjects = append(doc.Subjects, SubjectRecord{ID: s.ID, Name: s.Name, Color: s.Color})
	}
	doc.Player = PlayerRecord{
		XP:             p.XP,
		Level:          p.Level,
		Streak:         p.Streak,
		LastActiveDate: p.LastActiveDate,
		TotalPomodoros: p.TotalPomodoros,
		WeeklyMinutes:  p.WeeklyMinutes,
		PomoDayCount:   p.PomoDayCount,
		PomoDayDate:    p.PomoDayDate,
		PomoXPTotal:    p.PomoXPTotal,
	}
	for id, at := range ledger {
		doc.Achievements[id] = at.Unix()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode validates raw against the document schema and parses it.
// Missing sections merge with defaults: an absent player yields a fresh
// level-1 profile, absent collections yield empty ones.
func Decode(raw []byte) (*Document, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	doc := &Document{
		Player: PlayerRecord{Level: 1, WeeklyMinutes: map[string]int{}},
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	if doc.Player.Level < 1 {
		doc.Player.Level = 1
	}
	if doc.Player.WeeklyMinutes == nil {
		doc.Player.WeeklyMinutes = map[string]int{}
	}
	if doc.Achievements == nil {
		doc.Achievements = map[string]int64{}
	}
	return doc, nil
}

// Entities converts the document back into live domain values.
func (d *Document) Entities() ([]*tasks.Task, []*tasks.Subject, *progress.Profile, achievements.Ledger) {
	ts := make([]*tasks.Task, 0, len(d.Tasks))
	for _, rec := range d.Tasks {
		ts = append(ts, &tasks.Task{
			ID:               rec.ID,
			Title:            rec.Title,
			SubjectID:        rec.SubjectID,
			DueDate:          rec.DueDate,
			Priority:         tasks.Priority(rec.Priority),
			EstimatedMinutes: rec.EstimatedMinutes,
			Completed:        rec.Completed,
			CreatedAt:        time.Unix(rec.CreatedAt, 0),
		})
	}
	subjects := make([]*tasks.Subject, 0, len(d.Subjects))
	for _, rec := range d.Subjects {
		subjects = append(subjects, &tasks.Subject{ID: rec.ID, Name: rec.Name, Color: rec.Color})
	}

	p := progress.NewProfile()
	p.XP = d.Player.XP
	p.Level = d.Player.Level
	p.Streak = d.Player.Streak
	p.LastActiveDate = d.Player.LastActiveDate
	p.TotalPomodoros = d.Player.TotalPomodoros
	for k, v := range d.Player.WeeklyMinutes {
		p.WeeklyMinutes[k] = v
	}
	p.PomoDayCount = d.Player.PomoDayCount
	p.PomoDayDate = d.Player.PomoDayDate
	p.PomoXPTotal = d.Player.PomoXPTotal

	ledger := achievements.NewLedger()
	for id, at := range d.Achievements {
		ledger[id] = time.Unix(at, 0)
	}
	return ts, subjects, p, ledger
}
