package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/studyos/studyos/internal/statefile"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as a JSON document",
	Long:  "Export tasks, subjects, progress and achievements as a portable JSON document. Writes to stdout when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer sess.Close()

		raw, err := statefile.Encode(sess.Tasks(), sess.Subjects(), sess.Profile(), sess.Ledger(), time.Now())
		if err != nil {
			return fmt.Errorf("encode state: %w", err)
		}

		if len(args) == 0 {
			_, err = os.Stdout.Write(raw)
			return err
		}
		if err := os.WriteFile(args[0], raw, 0600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println("Exported to", args[0])
		return nil
	},
}
