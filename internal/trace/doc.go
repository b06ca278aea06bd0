// Package trace is the logging layer of minic.
//
// Every stage of a check (loading, lexing, parsing with scope resolution,
// export) emits span events; the containers under it emit debug-level
// point events (scope push/pop, stack growth, a full hash map refusing an
// insert).
//
//	minic check --trace=- --trace-level=debug prog.mc
//
// Levels: off, error, phase (driver + pass spans), detail (+ per-unit
// spans), debug (+ node-level points).
//
// Storage: stream writes every event immediately (text or ndjson), ring
// keeps the last N events in memory and is dumped when a unit fails, both
// does the two at once.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
