package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/astfmt"
	"minic/internal/driver"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] file.mc",
	Short: "Check a file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "tree format (edges|tree|msgpack), default from config")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if formatFlag == "" {
		formatFlag = state.cfg.Output.Export
	}
	format, err := astfmt.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	var (
		out      io.Writer = cmd.OutOrStdout()
		useColor           = state.color(os.Stdout)
	)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		out, useColor = f, false
	}
	bw := bufio.NewWriter(out)

	unit, err := driver.Export(cmd.Context(), args[0], bw, state.driverOptions(),
		astfmt.Options{Format: format, Color: useColor})
	if state.timings {
		if terr := driver.WriteTimings(cmd.ErrOrStderr(), []*driver.Unit{unit}, state.jsonTim); terr != nil {
			return terr
		}
	}
	if err != nil {
		return &reportedError{status: render(cmd.ErrOrStderr(), err, unit.Lines(), state.color(os.Stderr))}
	}
	return bw.Flush()
}
