package statefile

import (
	"strings"
	"testing"
	"time"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

func TestRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 0)
	task, err := tasks.NewTask("read chapter 4", "subj-1", "2025-04-01", tasks.PriorityHigh, 45, now)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	task.Completed = true
	subj, err := tasks.NewSubject("Physics", "#45d9a0")
	if err != nil {
		t.Fatalf("new subject: %v", err)
	}

	p := progress.NewProfile()
	p.XP = 120
	p.Level = 2
	p.Streak = 4
	p.LastActiveDate = "2025-03-31"
	p.TotalPomodoros = 9
	p.AddWeeklyMinutes("w_2881", 150)
	p.PomoDayCount = 3
	p.PomoDayDate = "2025-03-31"
	p.PomoXPTotal = 270

	ledger := achievements.NewLedger()
	ledger["first_task"] = time.Unix(1699999000, 0)

	raw, err := Encode([]*tasks.Task{task}, []*tasks.Subject{subj}, p, ledger, now)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	doc, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Version != Version {
		t.Errorf("version = %d, want %d", doc.Version, Version)
	}

	gotTasks, gotSubjects, gotProfile, gotLedger := doc.Entities()
	if len(gotTasks) != 1 || gotTasks[0].ID != task.ID {
		t.Fatalf("tasks = %d, want the original task back", len(gotTasks))
	}
	if gotTasks[0].Priority != tasks.PriorityHigh || !gotTasks[0].Completed {
		t.Errorf("task = {priority:%s completed:%v}, want {high true}", gotTasks[0].Priority, gotTasks[0].Completed)
	}
	if !gotTasks[0].CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", gotTasks[0].CreatedAt, now)
	}
	if len(gotSubjects) != 1 || gotSubjects[0].Name != "Physics" {
		t.Errorf("subjects = %v, want Physics", gotSubjects)
	}
	if gotProfile.XP != 120 || gotProfile.Level != 2 || gotProfile.Streak != 4 {
		t.Errorf("profile = {xp:%d level:%d streak:%d}, want {120 2 4}", gotProfile.XP, gotProfile.Level, gotProfile.Streak)
	}
	if gotProfile.WeeklyMinutes["w_2881"] != 150 {
		t.Errorf("weekly minutes = %d, want 150", gotProfile.WeeklyMinutes["w_2881"])
	}
	if !gotLedger.Unlocked("first_task") {
		t.Error("expected first_task to survive the round trip")
	}
	if !gotLedger["first_task"].Equal(time.Unix(1699999000, 0)) {
		t.Errorf("unlock time = %v, want original", gotLedger["first_task"])
	}
}

func TestDecode_PartialDocumentGetsDefaults(t *testing.T) {
	doc, err := Decode([]byte(`{"version": 1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	ts, subjects, p, ledger := doc.Entities()
	if len(ts) != 0 || len(subjects) != 0 {
		t.Errorf("entities = %d tasks, %d subjects, want none", len(ts), len(subjects))
	}
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.WeeklyMinutes == nil {
		t.Error("weekly minutes map must not be nil")
	}
	if len(ledger) != 0 {
		t.Errorf("ledger = %d entries, want 0", len(ledger))
	}
}

func TestDecode_RejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{"version":`},
		{"missing version", `{"tasks": []}`},
		{"wrong version type", `{"version": "1"}`},
		{"task without title", `{"version": 1, "tasks": [{"id": "t1"}]}`},
		{"unknown priority", `{"version": 1, "tasks": [{"id": "t1", "title": "x", "priority": "urgent"}]}`},
		{"negative xp", `{"version": 1, "player": {"xp": -5}}`},
		{"tasks not an array", `{"version": 1, "tasks": {}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.raw)); err == nil {
				t.Errorf("Decode(%s) accepted an invalid document", tc.raw)
			}
		})
	}
}

func TestEncode_IndentedOutput(t *testing.T) {
	raw, err := Encode(nil, nil, progress.NewProfile(), achievements.NewLedger(), time.Unix(0, 0))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"version\"") {
		t.Error("expected indented JSON output")
	}
}
