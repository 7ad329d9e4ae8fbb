package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyos/studyos/internal/tasks"
)

type taskRepo struct {
	db *sql.DB
}

func (r *taskRepo) LoadAll(ctx context.Context) ([]*tasks.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, subject_id, due_date, priority, estimated_minutes, completed, created_at
		FROM tasks ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	var out []*tasks.Task
	for rows.Next() {
		t := &tasks.Task{}
		var completed int
		var createdAt int64
		var priority string
		err := rows.Scan(&t.ID, &t.Title, &t.SubjectID, &t.DueDate, &priority,
			&t.EstimatedMinutes, &completed, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Priority = tasks.Priority(priority)
		t.Completed = completed != 0
		t.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *taskRepo) Save(ctx context.Context, t *tasks.Task, position int) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, subject_id, due_date, priority, estimated_minutes, completed, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			subject_id = excluded.subject_id,
			due_date = excluded.due_date,
			priority = excluded.priority,
			estimated_minutes = excluded.estimated_minutes,
			completed = excluded.completed,
			position = excluded.position`,
		t.ID, t.Title, t.SubjectID, t.DueDate, string(t.Priority),
		t.EstimatedMinutes, completed, t.CreatedAt.Unix(), position)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *taskRepo) SavePositions(ctx context.Context, ids []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin positions tx: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET position = ? WHERE id = ?`, i, id); err != nil {
			return fmt.Errorf("update position: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit positions: %w", err)
	}
	return nil
}

type subjectRepo struct {
	db *sql.DB
}

func (r *subjectRepo) LoadAll(ctx context.Context) ([]*tasks.Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM subjects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	defer rows.Close()

	var out []*tasks.Subject
	for rows.Next() {
		s := &tasks.Subject{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Color); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *subjectRepo) Save(ctx context.Context, s *tasks.Subject, position int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subjects (id, name, color, position)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			position = excluded.position`,
		s.ID, s.Name, s.Color, position)
	if err != nil {
		return fmt.Errorf("save subject: %w", err)
	}
	return nil
}

// DeleteCascade removes the subject and its tasks atomically.
func (r *subjectRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cascade tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE subject_id = ?`, id); err != nil {
		return fmt.Errorf("cascade tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cascade: %w", err)
	}
	return nil
}
