package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyos/studyos/internal/progress"
)

// profileRepo stores the single profile as row id=1. Weekly minutes are
// a JSON object column; a corrupt value degrades to an empty map
// instead of failing the load.
type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context) (*progress.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT xp, level, streak, last_active_date, total_pomodoros,
		       weekly_minutes, pomo_day_count, pomo_day_date, pomo_xp_total
		FROM profile WHERE id = 1`)

	p := progress.NewProfile()
	var weekly string
	err := row.Scan(&p.XP, &p.Level, &p.Streak, &p.LastActiveDate,
		&p.TotalPomodoros, &weekly, &p.PomoDayCount, &p.PomoDayDate, &p.PomoXPTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if err := json.Unmarshal([]byte(weekly), &p.WeeklyMinutes); err != nil || p.WeeklyMinutes == nil {
		p.WeeklyMinutes = make(map[string]int)
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p *progress.Profile) error {
	weekly, err := json.Marshal(p.WeeklyMinutes)
	if err != nil {
		return fmt.Errorf("marshal weekly minutes: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profile (id, xp, level, streak, last_active_date, total_pomodoros,
		                     weekly_minutes, pomo_day_count, pomo_day_date, pomo_xp_total)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			xp = excluded.xp,
			level = excluded.level,
			streak = excluded.streak,
			last_active_date = excluded.last_active_date,
			total_pomodoros = excluded.total_pomodoros,
			weekly_minutes = excluded.weekly_minutes,
			pomo_day_count = excluded.pomo_day_count,
			pomo_day_date = excluded.pomo_day_date,
			pomo_xp_total = excluded.pomo_xp_total`,
		p.XP, p.Level, p.Streak, p.LastActiveDate, p.TotalPomodoros,
		string(weekly), p.PomoDayCount, p.PomoDayDate, p.PomoXPTotal)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
