package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/driver"
	"minic/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check file.mc...",
	Short: "Check source files",
	Long:  `Check lexes, parses and checks every file. Each failing file reports its first error; the exit status is the code of the first failing file in argument order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("progress", false, "show per-file progress on a terminal")
}

func runCheck(cmd *cobra.Command, args []string) error {
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	opts := state.driverOptions()

	var (
		events chan driver.PhaseEvent
		uiDone chan error
	)
	if showProgress && isTerminal(os.Stderr) {
		// три фазы на файл, по два события на фазу
		events = make(chan driver.PhaseEvent, 6*len(args))
		uiDone = make(chan error, 1)
		opts.Observer = func(ev driver.PhaseEvent) { events <- ev }
		go func() { uiDone <- ui.RunProgress(os.Stderr, "check", args, events) }()
	}

	units, err := driver.Check(cmd.Context(), args, opts)
	if events != nil {
		close(events)
		if uerr := <-uiDone; uerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "progress: %v\n", uerr)
		}
	}
	if err != nil {
		return err
	}

	useColor := state.color(os.Stderr)
	status := 0
	for _, u := range units {
		if u == nil || !u.Failed() {
			continue
		}
		code := render(cmd.ErrOrStderr(), u.Err, u.Lines(), useColor)
		if status == 0 {
			status = code
		}
	}
	if state.timings {
		if err := driver.WriteTimings(cmd.ErrOrStderr(), units, state.jsonTim); err != nil {
			return err
		}
	}
	if status != 0 {
		return &reportedError{status: status}
	}
	return nil
}
