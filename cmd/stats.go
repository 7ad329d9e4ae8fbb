package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer sess.Close()

		snap := sess.Snapshot()
		fmt.Printf("Level         %d (%s), %d/%d XP\n", snap.Level, snap.LevelName, snap.XP, snap.XPNeeded)
		fmt.Printf("Streak        %d day(s)\n", snap.Streak)
		fmt.Printf("Productivity  %d/100\n", snap.Score)
		fmt.Printf("Tasks         %d done / %d total (%d%%)\n", snap.CompletedTasks, snap.TotalTasks, snap.CompletionPct)
		fmt.Printf("This week     %d focused minutes\n", snap.WeekMinutes)
		fmt.Printf("Focus         %d sessions today, %d all time\n", snap.PomodorosToday, snap.TotalPomodoros)
		return nil
	},
}
