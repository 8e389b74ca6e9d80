// Package orchestrator wires the schema, the UI schema document and the
// renderer registry together so callers can go from a controller snapshot to
// rendered output with one call.
package orchestrator
