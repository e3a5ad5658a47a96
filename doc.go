// Package elimination is the root of a small toolkit for deciding which teams
// of a division can no longer finish first.
//
// Packages:
//
//	standings/   — Team and Division types, the standings text reader, validation
//	flow/        — integral max-flow on an arena network: Edmonds–Karp, Ford–Fulkerson, Dinic, min cut
//	elimination/ — per-team trivial and flow checks, verdict state machine, certificates
//	report/      — go-pretty tables and the one-line summary
//	config/      — YAML configuration mapped onto analyzer options
//	logging/     — process-wide slog setup
//	cmd/elimination — the run and batch commands
//
// Quick start:
//
//	div, _ := standings.Parse(input)
//	res, _ := elimination.Analyze(ctx, div, elimination.WithCertificates(true))
//	fmt.Println(report.Summary(res))
package elimination
