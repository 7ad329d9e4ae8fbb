package progress

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		streak    int
		pomodoros int
		want      int
	}{
		{"empty profile", 0, 0, 0, 0, 0},
		{"all tasks done", 4, 4, 0, 0, 60},
		{"half done", 4, 2, 0, 0, 30},
		{"streak capped", 0, 0, 60, 0, 20},
		{"pomodoros capped", 0, 0, 0, 500, 20},
		{"everything maxed", 10, 10, 30, 50, 100},
		{"mixed", 10, 5, 15, 25, 50}, // 30 + 10 + 10
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile()
			p.Streak = tt.streak
			p.TotalPomodoros = tt.pomodoros

			got := Score(tt.total, tt.completed, p)
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	values := []int{0, 1, 7, 29, 30, 31, 49, 50, 51, 1000}

	for _, total := range values {
		for _, streak := range values {
			for _, pomos := range values {
				p := NewProfile()
				p.Streak = streak
				p.TotalPomodoros = pomos

				got := Score(total, total, p)
				if got < 0 || got > 100 {
					t.Fatalf("Score(total=%d, streak=%d, pomos=%d) = %d, outside [0,100]", total, streak, pomos, got)
				}
			}
		}
	}
}
