// Package main hosts the configmaker CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// configuration generation runs, facility settings scaffolding, and sequencer
// catalog inspection. It centralizes settings resolution and structured
// logging setup so the pipeline stages under internal/ stay free of terminal
// concerns.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
