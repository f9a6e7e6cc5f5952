package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks that a scenario or saved state is well formed",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSimulation(cmd)
		if err != nil {
			return err
		}
		topo := s.Topology()
		fmt.Fprintf(cmd.OutOrStdout(), "Document is valid: %d ASes, %d links, %d pending messages\n",
			topo.Len(), len(topo.Links()), len(s.Pending()))
		return nil
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	fileFlag(verifyCmd)
}
