package cmd

import (
	"fmt"
	"net/netip"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Resolves an address against the best routes of an AS",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSimulation(cmd)
		if err != nil {
			return err
		}
		at, err := getASN(cmd, "as")
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("addr")
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return err
		}
		entry, ok, err := s.Lookup(at, addr)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintf(w, "AS %s has no route to %s\n", at, addr)
			return nil
		}
		if entry.Route.Path.SelfOrigin {
			fmt.Fprintf(w, "%s is in %s, originated by AS %s\n", addr, entry.Network, at)
			return nil
		}
		fmt.Fprintf(w, "%s via %s: next hop AS %s, path %s (%s)\n", addr, entry.Network, entry.NextHop, entry.Route.Path, entry.Route.ComeFrom)
		return nil
	},
	GroupID: "sim",
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	fileFlag(lookupCmd)
	lookupCmd.Flags().Uint32("as", 0, "AS performing the lookup")
	lookupCmd.Flags().String("addr", "", "Address to resolve")
	_ = lookupCmd.MarkFlagRequired("as")
	_ = lookupCmd.MarkFlagRequired("addr")
}
