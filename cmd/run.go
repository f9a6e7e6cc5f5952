package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every queued message of a scenario",
	Long: `Loads a scenario or a saved state and drains its message queue.
With --init, an Init message is enqueued for every AS first, in ascending AS order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSimulation(cmd)
		if err != nil {
			return err
		}
		if ok, _ := cmd.Flags().GetBool("init"); ok {
			s.EnqueueAllInit()
		}
		if err = runAndReport(cmd.OutOrStdout(), s); err != nil {
			return err
		}
		return save(cmd, s)
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(runCmd)

	fileFlag(runCmd)
	runCmd.Flags().BoolP("init", "i", false, "Enqueue an Init for every AS before running")
	runCmd.Flags().StringP("save", "s", "", "Write the resulting state to this file")
}
