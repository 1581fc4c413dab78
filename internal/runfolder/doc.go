// Package runfolder resolves sequencing run folders into project directories
// and derives run-level metadata from them.
//
// A run folder is the root directory of one sequencer run. It contains
// exactly one project directory whose name matches the facility project
// pattern, a Stats/Stats.json demultiplexing summary, and a machine code as
// the second underscore token of its base name. Resolve validates the
// folders and pins down the single project ID; ReadGeometry and Machine
// derive the run-level fields of the output document.
package runfolder
