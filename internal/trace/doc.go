// Package trace records what the libcall tooling does while it resolves and
// annotates library declarations.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	libcall declare --trace=- --trace-level=debug --target x86_64-linux-gnu strlen
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped on failure
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failed resolutions
//   - LevelPhase: driver and per-target boundaries
//   - LevelDetail: module-level events
//   - LevelDebug: everything including per-declaration events
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeTarget, "target:"+name, parentID)
//	defer span.End("")
package trace
