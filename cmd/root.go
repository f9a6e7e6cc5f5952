package cmd

import (
	"os"

	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lotus",
	Short: "BGP route propagation simulator",
	Long: `Lotus simulates how BGP announcements spread between autonomous systems.
It follows Gao-Rexford export rules and can validate routes with ASPA and BGP-iSec.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(func() {
		_ = closeLog()
		closeLog = func() error { return nil }
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Create Scenarios",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_messages, "lmsg", "m", false, "Write message expansion and announcements to the console")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_route_changes, "lrchange", "g", false, "Write route changes to the console")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_rejections, "lreject", "r", false, "Write rejected routes and dropped updates to the console")
}
