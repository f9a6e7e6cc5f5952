package cmd

import (
	"fmt"
	"os"

	"github.com/hashiba-k-jp/C-LOTUS/core"
	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Writes the six AS sample scenario, with an Init queued for every AS",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")
		if err := state.PathValidator(out); err != nil {
			return err
		}
		if _, err := os.Stat(out); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", out)
		}
		s := core.SampleSimulation(nil)
		s.EnqueueAllInit()
		if err := s.SaveFile(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote scenario %q to %s\n", s.Name, out)
		return nil
	},
	GroupID: "init",
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("output", "o", DefaultScenarioPath, "Where to write the scenario")
	newCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
