package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Makes an AS hijack the network of another and propagates the result",
	Long: `The attacker announces the victim's network to all of its neighbours, forging the path victim-attacker.
Pending messages of the loaded state are processed first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSimulation(cmd)
		if err != nil {
			return err
		}
		attacker, err := getASN(cmd, "attacker")
		if err != nil {
			return err
		}
		victim, err := getASN(cmd, "victim")
		if err != nil {
			return err
		}
		if err = s.Hijack(attacker, victim); err != nil {
			return err
		}
		if err = runAndReport(cmd.OutOrStdout(), s); err != nil {
			return err
		}

		// report who now routes the victim toward the attacker
		w := cmd.OutOrStdout()
		for _, id := range s.Topology().ASNs() {
			if id == attacker || id == victim {
				continue
			}
			path, ok := s.BestPath(victim, id)
			if ok && path.Contains(attacker) {
				fmt.Fprintf(w, "AS %s routes through the attacker: %s\n", id, path)
			}
		}
		return save(cmd, s)
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(attackCmd)

	fileFlag(attackCmd)
	attackCmd.Flags().Uint32("attacker", 0, "AS announcing the forged route")
	attackCmd.Flags().Uint32("victim", 0, "AS whose network is hijacked")
	attackCmd.Flags().StringP("save", "s", "", "Write the resulting state to this file")
	_ = attackCmd.MarkFlagRequired("attacker")
	_ = attackCmd.MarkFlagRequired("victim")
}
