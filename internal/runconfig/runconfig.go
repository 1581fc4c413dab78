// Package runconfig assembles the pipeline configuration document from
// the outputs of the other stages and renders it as YAML.
package runconfig

import (
	"strings"

	"configmaker/internal/fastq"
	"configmaker/internal/submission"
)

// Core sample keys, written before any merged submission columns.
const (
	keyR1       = "R1"
	keyR2       = "R2"
	keyPaired   = "paired_end"
	keySampleID = "Sample_ID"
)

// Params carries the assembler inputs. Machine is the already resolved
// model name. Organism and Libprep are command line overrides applied on
// top of the sample sheet options. Form is nil when no submission form
// was used.
type Params struct {
	ProjectID    string
	Options      map[string]any
	Organism     string
	Libprep      string
	ReadGeometry []int
	Machine      string
	FastqDir     string
	Samples      []fastq.Sample
	Form         *submission.Table
}

// Sample is one record of the samples mapping. R1 and R2 are comma
// joined path lists; Paired is 0 or 1.
type Sample struct {
	ID     string
	R1     string
	R2     string
	Paired int
	Extra  map[string]string
}

// Config is the assembled document prior to serialization.
type Config struct {
	ProjectID    string
	Organism     any
	Libprep      any
	ReadGeometry []int
	Machine      string
	FastqDir     string
	// ExtraColumns names the merged submission columns appended to every
	// sample record, in workbook order.
	ExtraColumns []string
	Samples      []Sample
}

// Assemble combines the matched samples, the sample sheet options, and
// the optional submission table into a Config. With a submission table
// present, samples missing from it are dropped.
func Assemble(p Params) *Config {
	cfg := &Config{
		ProjectID:    p.ProjectID,
		ReadGeometry: p.ReadGeometry,
		Machine:      p.Machine,
		FastqDir:     p.FastqDir,
	}

	if v, ok := p.Options["Organism"]; ok {
		cfg.Organism = v
	}
	if p.Organism != "" {
		cfg.Organism = p.Organism
	}
	if v, ok := p.Options["Libprep"]; ok {
		cfg.Libprep = v
	}
	if p.Libprep != "" {
		cfg.Libprep = p.Libprep
	}

	if p.Form != nil {
		for _, col := range p.Form.Columns {
			switch col {
			case keyR1, keyR2, keyPaired, keySampleID:
				continue
			}
			cfg.ExtraColumns = append(cfg.ExtraColumns, col)
		}
	}

	for _, s := range p.Samples {
		var extra map[string]string
		if p.Form != nil {
			row, ok := p.Form.Rows[s.ID]
			if !ok {
				continue
			}
			extra = make(map[string]string, len(cfg.ExtraColumns))
			for _, col := range cfg.ExtraColumns {
				extra[col] = row[col]
			}
		}
		paired := 0
		if s.Paired {
			paired = 1
		}
		cfg.Samples = append(cfg.Samples, Sample{
			ID:     s.ID,
			R1:     strings.Join(s.Files.R1, ","),
			R2:     strings.Join(s.Files.R2, ","),
			Paired: paired,
			Extra:  extra,
		})
	}
	return cfg
}
