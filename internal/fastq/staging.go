package fastq

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"configmaker/internal/fileutil"
)

const lockFilename = ".configmaker.lock"

// Stage links the fastq files of every sample into destDir, preserving
// the run folder relative layout. Links that already point at the right
// file are left alone, so reruns over the same data are safe. The
// directory is locked for the duration of the run.
func Stage(destDir string, sampleIDs, projectDirs []string) error {
	if err := fileutil.EnsureDir(destDir); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(destDir, lockFilename))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire staging lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("fastq directory %s is in use by another configmaker run", destDir)
	}
	defer lock.Unlock()

	indexes := make([]*Index, 0, len(projectDirs))
	for _, dir := range projectDirs {
		ix, err := NewIndex(dir)
		if err != nil {
			return err
		}
		indexes = append(indexes, ix)
	}

	for _, id := range sampleIDs {
		for _, ix := range indexes {
			abs, err := ix.Match(id, false)
			if err != nil {
				return err
			}
			rel, err := ix.Match(id, true)
			if err != nil {
				return err
			}
			if err := linkFiles(destDir, abs.R1, rel.R1); err != nil {
				return err
			}
			if err := linkFiles(destDir, abs.R2, rel.R2); err != nil {
				return err
			}
		}
	}
	return nil
}

func linkFiles(destDir string, srcs, rels []string) error {
	for i, src := range srcs {
		dst := filepath.Join(destDir, rels[i])
		if err := fileutil.EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
		if err := fileutil.EnsureSymlink(src, dst); err != nil {
			return err
		}
	}
	return nil
}
