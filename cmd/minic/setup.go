package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/config"
	"minic/internal/driver"
	"minic/internal/prof"
	"minic/internal/trace"
)

// cliState is what the persistent flags and the config file resolve to.
type cliState struct {
	cfg     config.Config
	mode    colorMode
	tracer  trace.Tracer
	timings bool
	jsonTim bool
	jobs    int
	prof    *prof.Session
}

var state = cliState{mode: colorAuto, tracer: trace.Nop}

func (s *cliState) color(f *os.File) bool { return shouldColor(s.mode, f) }

func (s *cliState) driverOptions() driver.Options {
	return driver.Options{Config: s.cfg, Jobs: s.jobs, Timings: s.timings}
}

// setup loads the config, applies flag overrides and installs the tracer
// on the command context.
func setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Resolve(cfgPath, ".")
	if err != nil {
		return err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"color", &cfg.Output.Color},
		{"trace", &cfg.Trace.Output},
		{"trace-level", &cfg.Trace.Level},
		{"trace-mode", &cfg.Trace.Mode},
		{"trace-format", &cfg.Trace.Format},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
	}
	// --trace без уровня включает phase
	if flags.Changed("trace") && !flags.Changed("trace-level") && cfg.Trace.Level == "off" {
		cfg.Trace.Level = "phase"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if state.mode, err = readColorMode(cfg.Output.Color); err != nil {
		return err
	}
	if state.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timFormat, err := flags.GetString("timings-format")
	if err != nil {
		return fmt.Errorf("failed to get timings-format flag: %w", err)
	}
	switch timFormat {
	case "text", "json":
		state.jsonTim = timFormat == "json"
	default:
		return fmt.Errorf("invalid --timings-format %q (expected text|json)", timFormat)
	}
	if state.jobs, err = flags.GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	state.cfg = cfg

	tcfg, err := cfg.TraceConfig()
	if err != nil {
		return err
	}
	tracer, err := trace.New(tcfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	state.tracer = tracer

	var popts prof.Options
	for _, p := range []struct {
		flag string
		dst  *string
	}{{"cpu-profile", &popts.CPU}, {"mem-profile", &popts.Mem}, {"runtime-trace", &popts.Trace}} {
		if *p.dst, err = flags.GetString(p.flag); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", p.flag, err)
		}
	}
	if popts.Enabled() {
		if state.prof, err = prof.Start(popts); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = trace.WithTracer(ctx, tracer)
	cmd.SetContext(ctx)
	return nil
}

// finish stops profiling and flushes the tracer. After a failure a ring
// buffer is dumped to stderr.
func finish(failed bool) {
	if err := state.prof.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
	}
	state.prof = nil
	tracer := state.tracer
	if failed {
		if d, ok := tracer.(trace.Dumper); ok {
			fmt.Fprintln(os.Stderr, "trace: last events")
			if err := d.Dump(os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
}
