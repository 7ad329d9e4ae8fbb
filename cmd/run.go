package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyos/studyos/internal/app"
	"github.com/studyos/studyos/internal/session"
	"github.com/studyos/studyos/internal/store"
)

// runApp opens the store and the session, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	sess, st, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	defer sess.Close()

	return app.Run(sess)
}

// openSession wires the store's repositories into a live session.
// Callers own closing both, session first.
func openSession(cmd *cobra.Command) (*session.Session, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	sess, err := session.Open(cmd.Context(), session.Options{
		Profiles: st.Profiles(),
		Tasks:    st.Tasks(),
		Subjects: st.Subjects(),
		Ledger:   st.Ledger(),
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open session: %w", err)
	}
	return sess, st, nil
}
