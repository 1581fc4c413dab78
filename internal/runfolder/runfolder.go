package runfolder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"configmaker/internal/settings"
)

var (
	ErrInvalidPath          = errors.New("invalid run folder path")
	ErrInvalidProjectID     = errors.New("invalid project ID")
	ErrProjectNotFound      = errors.New("project not found")
	ErrAmbiguousProject     = errors.New("ambiguous project")
	ErrReadGeometryMismatch = errors.New("read geometry mismatch")
	ErrMalformedStats       = errors.New("malformed demultiplexing stats")
)

// Resolution is the outcome of project resolution across run folders.
type Resolution struct {
	// Folders are the validated absolute run folder paths, input order.
	Folders []string
	// ProjectDirs hold the matched project directory per run folder,
	// parallel to Folders.
	ProjectDirs []string
	// ProjectID is the single project ID shared by every run folder.
	ProjectID string
}

// ValidateProjectID checks an explicitly supplied project ID against the
// facility pattern.
func ValidateProjectID(id string, pattern *regexp.Regexp) error {
	if !pattern.MatchString(id) {
		return fmt.Errorf("%w: %q does not match %s", ErrInvalidProjectID, id, pattern)
	}
	return nil
}

// Resolve validates the given run folder paths and locates the project
// directory in each. With an explicit project ID every folder must contain a
// directory of exactly that name. Without one, each folder must contain
// exactly one directory matching the facility pattern, and all folders must
// agree on the resulting ID.
func Resolve(paths []string, projectID string, pattern *regexp.Regexp) (Resolution, error) {
	if len(paths) == 0 {
		return Resolution{}, fmt.Errorf("%w: no run folders given", ErrInvalidPath)
	}
	if projectID != "" {
		if err := ValidateProjectID(projectID, pattern); err != nil {
			return Resolution{}, err
		}
	}

	folders := make([]string, 0, len(paths))
	for _, path := range paths {
		expanded, err := settings.ExpandPath(path)
		if err != nil {
			return Resolution{}, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return Resolution{}, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
		}
		if !info.IsDir() {
			return Resolution{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
		}
		folders = append(folders, expanded)
	}

	res := Resolution{Folders: folders, ProjectID: projectID}
	var inferred string
	for _, folder := range folders {
		dir, id, err := matchProjectDir(folder, projectID, pattern)
		if err != nil {
			return Resolution{}, err
		}
		res.ProjectDirs = append(res.ProjectDirs, dir)
		if projectID == "" {
			if inferred != "" && inferred != id {
				return Resolution{}, fmt.Errorf("%w: run folders resolve to more than one project ID (%s, %s); use --project-id to choose one", ErrAmbiguousProject, inferred, id)
			}
			inferred = id
		}
	}
	if res.ProjectID == "" {
		res.ProjectID = inferred
	}
	return res, nil
}

func matchProjectDir(folder, projectID string, pattern *regexp.Regexp) (string, string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrInvalidPath, folder, err)
	}

	if projectID != "" {
		for _, entry := range entries {
			if entry.IsDir() && entry.Name() == projectID {
				return filepath.Join(folder, entry.Name()), projectID, nil
			}
		}
		return "", "", fmt.Errorf("%w: %s is not present in run folder %s", ErrProjectNotFound, projectID, folder)
	}

	var matched string
	for _, entry := range entries {
		if !entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		if matched != "" {
			return "", "", fmt.Errorf("%w: run folder %s contains more than one project directory; use --project-id to choose one", ErrAmbiguousProject, folder)
		}
		matched = entry.Name()
	}
	if matched == "" {
		return "", "", fmt.Errorf("%w: no project directory in run folder %s", ErrProjectNotFound, folder)
	}
	return filepath.Join(folder, matched), matched, nil
}
