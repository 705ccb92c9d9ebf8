// Package bench measures pairstore layouts against simple baselines.
//
// A Runner generates deterministic workloads, then times four phases per
// implementation: single inserts, a lookup of every workload key in that
// map, one bulk insert into a fresh map and a lookup of every key in the
// bulk-filled map. Each phase is verified (lookups must hit, Len must equal
// the number of distinct keys) and reported to a MetricsCollector and a
// Logger.
//
//	r, err := bench.NewRunner(
//	    bench.WithOps(10_000),
//	    bench.WithWorkloads(bench.Sequential, bench.Random),
//	    bench.WithImpls("store", "padded", "hash"),
//	    bench.WithLogger(bench.NewTextLogger(slog.LevelInfo)),
//	)
//	report, err := r.Run(ctx)
//	report.WriteTable(os.Stdout)
//
// Timing covers only calls into the measured map. Workload generation,
// verification and logging happen outside the timed sections.
package bench
