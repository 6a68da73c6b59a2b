// Package divide assigns a fixed population of students to a fixed number
// of classes so that several class-level aggregates — average total score,
// per-subject average score, gender ratio, class size — are balanced within
// configurable tolerances.
//
// # Reading Guide
//
// Start with these three files to understand the optimization kernel:
//   - solution.go: the assignment vector, incremental class statistics, and the cost function
//   - annealer.go: one simulated-annealing search instance (Metropolis acceptance, reheat)
//   - parallel.go: fork-join coordination of N annealers sharing an early-stop flag
//
// # Architecture
//
// Divide is the single entry point. It builds one deterministic greedy seed
// per search instance (initial.go), runs the instances in parallel, and
// materializes the lowest-cost assignment into []*Class. Validate performs
// an independent post-hoc check of the hard constraints; it never influences
// the search.
//
// Balanced multi-way partitioning is NP-hard, so the search is heuristic:
// results respect the population invariants (every student in exactly one
// class) but constraint satisfaction within an iteration budget is
// best-effort and surfaced only through Validate.
//
// Sub-packages hold the non-algorithmic surfaces:
//   - divide/roster: column-mapped spreadsheet/CSV ingestion and result export
//   - divide/stats: descriptive statistics over a finished division
//   - divide/history: run-history persistence
package divide
