// Package settings loads, normalizes, and validates facility settings.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CONFIGMAKER_SETTINGS
// environment fallback. The Settings type centralizes every knob the
// generator needs: the project ID pattern, the sequencer catalog, sample
// sheet and submission form discovery names, workbook sheet layout, the
// FASTQ staging directory, and logging defaults.
//
// Always obtain settings through this package so downstream code receives a
// compiled project pattern, a populated sequencer catalog, and clear
// validation errors.
package settings
