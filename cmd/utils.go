package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashiba-k-jp/C-LOTUS/core"
	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/spf13/cobra"
)

const DefaultScenarioPath = "scenario.yaml"

// closeLog releases the log file of the running command.
var closeLog = func() error { return nil }

func observer(prefix string) (core.Observer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger, closer, err := core.NewLogger(prefix, level, logPath)
	if err != nil {
		return nil, err
	}
	closeLog = closer
	return core.SlogObserver{Logger: logger}, nil
}

// loadSimulation imports the document named by the --file flag of cmd.
func loadSimulation(cmd *cobra.Command) (*core.Simulation, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	obs, err := observer(file)
	if err != nil {
		return nil, err
	}
	s, err := core.LoadFile(file, obs)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return s, nil
}

func getASN(cmd *cobra.Command, name string) (state.ASN, error) {
	v, err := cmd.Flags().GetUint32(name)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("--%s: %w", name, state.ErrReservedASN)
	}
	return state.ASN(v), nil
}

// runAndReport drains the queue of s and prints what happened. A fatal run
// still reports how far it got.
func runAndReport(w io.Writer, s *core.Simulation) error {
	err := s.Run()
	st := s.Stats()
	fmt.Fprintf(w, "processed %d messages, dropped %d, %d new best routes\n", st.Processed, st.Dropped, st.Announcements)
	var fatal *core.FatalError
	if errors.As(err, &fatal) {
		fmt.Fprintf(w, "%d messages left in queue\n", len(s.Pending()))
	}
	return err
}

func save(cmd *cobra.Command, s *core.Simulation) error {
	out, err := cmd.Flags().GetString("save")
	if err != nil || out == "" {
		return err
	}
	if err = s.SaveFile(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved state to %s\n", out)
	return nil
}

func fileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", DefaultScenarioPath, "Path to the scenario or saved state")
}
