package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"elevatorcar/config"
	"elevatorcar/controller"
	"elevatorcar/sim"
	"elevatorcar/types"
)

type carFlags struct {
	configPath string
	lowest     int
	highest    int
	start      int
}

func newRootCmd() *cobra.Command {
	var flags carFlags

	root := &cobra.Command{
		Use:   "elevatorcar",
		Short: "Stop scheduler for a single elevator car",
		Long:  "elevatorcar runs hall calls and car destinations through a directional-sweep stop scheduler.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the Go flag set
			return flag.CommandLine.Parse(nil)
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML car configuration file")
	pf.IntVar(&flags.lowest, "lowest", 1, "Lowest floor served")
	pf.IntVar(&flags.highest, "highest", 10, "Highest floor served")
	pf.IntVar(&flags.start, "start", 0, "Start floor (defaults to the lowest floor)")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newReplayCmd(&flags),
		newShellCmd(&flags),
	)
	return root
}

func newReplayCmd(flags *carFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE...",
		Short: "Run scripted requests against a fresh car",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			car, err := flags.newCar(cmd.Flags())
			if err != nil {
				return err
			}
			runner := sim.NewRunner(car, cmd.OutOrStdout())
			for _, path := range args {
				if err := replayFile(runner, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newShellCmd(flags *carFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read commands from stdin (hall N, car N, next, advance, list, status)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			car, err := flags.newCar(cmd.Flags())
			if err != nil {
				return err
			}
			runner := sim.NewRunner(car, cmd.OutOrStdout())
			glog.Infof("Shell session %s started", runner.Session())
			return runner.Run(cmd.InOrStdin())
		},
	}
}

func replayFile(runner *sim.Runner, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	glog.Infof("Replaying %s in session %s", path, runner.Session())
	if err := runner.Run(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// newCar builds the car configuration: file first, then any floor flag the
// user set explicitly.
func (f *carFlags) newCar(fs *pflag.FlagSet) (*controller.Car, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if fs.Changed("lowest") {
		cfg.LowestFloor = types.Floor(f.lowest)
	}
	if fs.Changed("highest") {
		cfg.HighestFloor = types.Floor(f.highest)
	}
	if fs.Changed("start") {
		start := types.Floor(f.start)
		cfg.StartFloor = &start
	}

	return controller.NewCar(&cfg)
}
