package store

import (
	"context"
	"time"

	"github.com/studyos/studyos/internal/achievements"
	"github.com/studyos/studyos/internal/progress"
	"github.com/studyos/studyos/internal/tasks"
)

// ProfileRepo persists the single player profile. All methods may fail;
// the core treats failures as non-fatal and keeps in-memory state
// authoritative for the rest of the session.
type ProfileRepo interface {
	// Load returns the stored profile, or nil if none has been saved.
	Load(ctx context.Context) (*progress.Profile, error)

	// Save upserts the profile.
	Save(ctx context.Context, p *progress.Profile) error
}

// TaskRepo persists tasks in their manual order.
type TaskRepo interface {
	// LoadAll returns every task ordered by stored position.
	LoadAll(ctx context.Context) ([]*tasks.Task, error)

	// Save upserts a task at the given position.
	Save(ctx context.Context, t *tasks.Task, position int) error

	// Delete removes a task. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// SavePositions rewrites the stored order to match ids.
	SavePositions(ctx context.Context, ids []string) error
}

// SubjectRepo persists subjects in insertion order.
type SubjectRepo interface {
	// LoadAll returns every subject ordered by stored position.
	LoadAll(ctx context.Context) ([]*tasks.Subject, error)

	// Save upserts a subject at the given position.
	Save(ctx context.Context, s *tasks.Subject, position int) error

	// DeleteCascade removes the subject and every task referencing it
	// in one transaction, so an orphaned-task partial state is
	// structurally impossible.
	DeleteCascade(ctx context.Context, id string) error
}

// LedgerRepo persists the write-once achievement ledger.
type LedgerRepo interface {
	// Load returns the full ledger, empty if nothing is unlocked.
	Load(ctx context.Context) (achievements.Ledger, error)

	// Unlock records an achievement. Re-recording an existing ID keeps
	// the original timestamp.
	Unlock(ctx context.Context, id string, at time.Time) error
}
