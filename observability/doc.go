// Package observability provides OpenTelemetry tracing and metrics for
// tool invocations.
//
// Both are no-ops until a provider is installed, so library consumers
// pay nothing unless they opt in:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("railroad"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("railroad"))
//	defer mp.Shutdown(ctx)
//
// The process package starts a span per invocation and records
// invocation counts, timeouts, and durations.
package observability
