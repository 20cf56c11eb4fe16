// Package store provides an optional SQLite-backed archive of generator
// runs.
//
// Each run records the engine used, its parameters, and every emitted
// tuple in canonical order. The archive is a sink only: the canonical
// text output on stdout is unaffected by archiving, and archiving happens
// strictly after that output is complete.
//
// Rows store big integers as decimal strings, so archived runs survive
// values beyond 64 bits unchanged.
package store
