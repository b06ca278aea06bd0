package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minic/internal/diag"
	"minic/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "minic",
	Short:         "Front end for a small C-like language",
	Long:          `minic lexes, parses and semantically checks source files, reporting the first error of each file`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("config", "", "config file (default: minic.toml or minic.yaml found upwards)")
	flags.String("trace", "", "trace output file, - for stderr")
	flags.String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "", "trace storage (stream|ring|both)")
	flags.String("trace-format", "", "trace encoding (auto|text|ndjson)")
	flags.Bool("timings", false, "show per-file phase timings")
	flags.String("timings-format", "text", "timings output (text|json)")
	flags.Int("jobs", 0, "files checked in parallel (0 = config or GOMAXPROCS)")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
}

// main runs the root command. The exit status is the code of the first
// error, 0 on success.
func main() {
	err := rootCmd.Execute()
	finish(err != nil)
	if err == nil {
		return
	}
	var rep *reportedError
	if errors.As(err, &rep) {
		os.Exit(rep.status)
	}
	diag.NewReporter(os.Stderr, nil, state.color(os.Stderr)).Fatal(err)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
