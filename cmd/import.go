package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studyos/studyos/internal/statefile"
	"github.com/studyos/studyos/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a previously exported document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		doc, err := statefile.Decode(raw)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.Reset(ctx); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}

		ts, subjects, profile, ledger := doc.Entities()
		if err := st.Profiles().Save(ctx, profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
		for i, subj := range subjects {
			if err := st.Subjects().Save(ctx, subj, i); err != nil {
				return fmt.Errorf("import subject %q: %w", subj.Name, err)
			}
		}
		for i, t := range ts {
			if err := st.Tasks().Save(ctx, t, i); err != nil {
				return fmt.Errorf("import task %q: %w", t.Title, err)
			}
		}
		for id, at := range ledger {
			if err := st.Ledger().Unlock(ctx, id, at); err != nil {
				return fmt.Errorf("import achievement %q: %w", id, err)
			}
		}

		fmt.Printf("Imported %d task(s), %d subject(s), %d achievement(s).\n",
			len(ts), len(subjects), len(ledger))
		return nil
	},
}
