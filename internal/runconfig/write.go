package runconfig

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"configmaker/internal/fileutil"
)

// Document builds the YAML mapping with a fixed top level key order:
// project_id, organism, libprepkit, read_geometry, machine, fastq_dir,
// samples. Optional keys are left out entirely when unset; machine is
// always written, even when empty.
func (c *Config) Document() (*yaml.Node, error) {
	root := newMapping()

	if c.ProjectID != "" {
		if err := appendEntry(root, "project_id", c.ProjectID); err != nil {
			return nil, err
		}
	}
	if c.Organism != nil {
		if err := appendEntry(root, "organism", c.Organism); err != nil {
			return nil, err
		}
	}
	if c.Libprep != nil {
		if err := appendEntry(root, "libprepkit", c.Libprep); err != nil {
			return nil, err
		}
	}
	if err := appendEntry(root, "read_geometry", c.ReadGeometry); err != nil {
		return nil, err
	}
	if err := appendEntry(root, "machine", c.Machine); err != nil {
		return nil, err
	}
	if c.FastqDir != "" {
		if err := appendEntry(root, "fastq_dir", c.FastqDir); err != nil {
			return nil, err
		}
	}

	samples := newMapping()
	for _, s := range c.Samples {
		node, err := c.sampleNode(s)
		if err != nil {
			return nil, err
		}
		appendNode(samples, s.ID, node)
	}
	appendNode(root, "samples", samples)
	return root, nil
}

func (c *Config) sampleNode(s Sample) (*yaml.Node, error) {
	m := newMapping()
	if err := appendEntry(m, keyR1, s.R1); err != nil {
		return nil, err
	}
	if err := appendEntry(m, keyR2, s.R2); err != nil {
		return nil, err
	}
	if err := appendEntry(m, keyPaired, s.Paired); err != nil {
		return nil, err
	}
	if err := appendEntry(m, keySampleID, s.ID); err != nil {
		return nil, err
	}
	for _, col := range c.ExtraColumns {
		if err := appendEntry(m, col, s.Extra[col]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func appendEntry(m *yaml.Node, key string, value any) error {
	var v yaml.Node
	if err := v.Encode(value); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	appendNode(m, key, &v)
	return nil
}

func appendNode(m *yaml.Node, key string, value *yaml.Node) {
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	m.Content = append(m.Content, k, value)
}

// Write renders the document to w.
func (c *Config) Write(w io.Writer) error {
	doc, err := c.Document()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// WriteFile renders the document and replaces path atomically.
func (c *Config) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
