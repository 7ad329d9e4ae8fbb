package progress

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}

	for _, tt := range tests {
		got := XPForLevel(tt.level)
		if got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPForLevel_StrictlyIncreasing(t *testing.T) {
	prev := 0
	for level := 1; level <= 40; level++ {
		got := XPForLevel(level)
		if got <= prev {
			t.Fatalf("XPForLevel(%d) = %d, not greater than XPForLevel(%d) = %d", level, got, level-1, prev)
		}
		prev = got
	}
}

func TestApplyXP_NoLevelUp(t *testing.T) {
	p := NewProfile()

	leveled := ApplyXP(p, 40)

	if leveled {
		t.Error("expected no level-up")
	}
	if p.Level != 1 || p.XP != 40 {
		t.Errorf("profile = {xp:%d, level:%d}, want {xp:40, level:1}", p.XP, p.Level)
	}
}

func TestApplyXP_SingleLevelUp(t *testing.T) {
	p := NewProfile()
	p.XP = 90

	leveled := ApplyXP(p, 40)

	if !leveled {
		t.Error("expected level-up")
	}
	if p.Level != 2 || p.XP != 30 {
		t.Errorf("profile = {xp:%d, level:%d}, want {xp:30, level:2}", p.XP, p.Level)
	}
}

func TestApplyXP_MultiLevelUp(t *testing.T) {
	p := NewProfile()

	leveled := ApplyXP(p, 1000)

	if !leveled {
		t.Error("expected level-up")
	}
	// 1000 - 100 - 150 - 225 - 337 = 188, below XPForLevel(5) = 506.
	if p.Level != 5 || p.XP != 188 {
		t.Errorf("profile = {xp:%d, level:%d}, want {xp:188, level:5}", p.XP, p.Level)
	}
}

func TestApplyXP_InvariantHolds(t *testing.T) {
	awards := []int{0, 1, 40, 99, 100, 101, 333, 1000, 12345}

	for _, amount := range awards {
		p := NewProfile()
		ApplyXP(p, amount)
		if p.XP < 0 || p.XP >= XPForLevel(p.Level) {
			t.Errorf("award %d: xp %d outside [0, %d) at level %d", amount, p.XP, XPForLevel(p.Level), p.Level)
		}
		if p.Level < 1 {
			t.Errorf("award %d: level %d below 1", amount, p.Level)
		}
	}
}

func TestTaskXP(t *testing.T) {
	tests := []struct {
		priority string
		want     int
	}{
		{"low", 15},
		{"medium", 25},
		{"high", 40},
		{"urgent", 20},
		{"", 20},
	}

	for _, tt := range tests {
		got := TaskXP(tt.priority)
		if got != tt.want {
			t.Errorf("TaskXP(%q) = %d, want %d", tt.priority, got, tt.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Novice"},
		{5, "Sage"},
		{10, "Mythic"},
		{11, "Mythic"},
		{99, "Mythic"},
	}

	for _, tt := range tests {
		got := LevelName(tt.level)
		if got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
