// Package harness runs conformance scenarios against the search engines.
//
// A scenario is a YAML file naming an engine and its parameters. Running a
// scenario produces the engine's canonical text output, which is compared
// against a golden file. Golden files double as the source of truth for
// the generators' observable behavior: soundness, canonical ordering,
// deduplication, primitivity, and the growth engine's documented gaps are
// all visible in them.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
