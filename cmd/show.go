package cmd

import (
	"fmt"
	"os"

	"github.com/hashiba-k-jp/C-LOTUS/core"
	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"i", "inspect"},
	Short:   "Shows the routing tables, links and pending messages of a state",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSimulation(cmd)
		if err != nil {
			return err
		}
		colored := isatty.IsTerminal(os.Stdout.Fd())
		if ok, _ := cmd.Flags().GetBool("no-color"); ok {
			colored = false
		}
		w := cmd.OutOrStdout()

		ids := s.Topology().ASNs()
		if v, _ := cmd.Flags().GetUint32("as"); v != 0 {
			if !s.Topology().Has(state.ASN(v)) {
				return fmt.Errorf("%w: %d", state.ErrUnknownAS, v)
			}
			ids = []state.ASN{state.ASN(v)}
		}
		for _, id := range ids {
			as, _ := s.Topology().Get(id)
			core.RenderAS(w, as, colored)
			fmt.Fprintln(w)
		}
		if ok, _ := cmd.Flags().GetBool("links"); ok {
			core.RenderLinks(w, s.Topology().Links())
			fmt.Fprintln(w)
		}
		core.RenderQueue(w, s.Pending())
		return nil
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(showCmd)

	fileFlag(showCmd)
	showCmd.Flags().Uint32("as", 0, "Only show this AS")
	showCmd.Flags().Bool("no-color", false, "Disable colored output")
	showCmd.Flags().BoolP("links", "l", false, "Also list the links")
}
