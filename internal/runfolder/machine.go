package runfolder

import (
	"path/filepath"
	"strings"

	"configmaker/internal/diagnostics"
)

// Machine maps each run folder's machine code through the sequencer catalog
// and pipe-joins the distinct model names in first-seen order. The machine
// code is the second underscore token of the folder's base name. Unknown
// codes and folders without a code token contribute nothing beyond a
// finding; the result may be empty.
func Machine(folders []string, catalog map[string]string, diag *diagnostics.Collector) string {
	var names []string
	seen := make(map[string]struct{})
	warned := make(map[string]struct{})
	for _, folder := range folders {
		base := filepath.Base(folder)
		tokens := strings.Split(base, "_")
		if len(tokens) < 2 {
			diag.Warnf(diagnostics.StageAssemble, diagnostics.CodeMissingMachineToken,
				"run folder %s has no machine code token", base)
			continue
		}
		code := tokens[1]
		model := catalog[code]
		if model == "" {
			if _, ok := warned[code]; !ok {
				warned[code] = struct{}{}
				diag.Warnf(diagnostics.StageAssemble, diagnostics.CodeUnknownSequencer,
					"machine code %s is not in the sequencer catalog", code)
			}
			continue
		}
		if _, ok := seen[model]; ok {
			continue
		}
		seen[model] = struct{}{}
		names = append(names, model)
	}
	if len(names) > 1 {
		diag.Warn(diagnostics.StageAssemble, diagnostics.CodeMultipleSequencers,
			"multiple sequencing machines identified")
	}
	return strings.Join(names, "|")
}
