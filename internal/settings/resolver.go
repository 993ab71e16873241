package settings

import (
	"path/filepath"
	"sort"
)

// kubeconfigDirPatterns are the globs applied inside a KUBECONFIG
// directory entry.
var kubeconfigDirPatterns = [...]string{"*.yml", "*.yaml"}

// PathSet is an unordered, duplicate-free set of filesystem paths.
type PathSet map[string]struct{}

// Insert adds path to the set.
func (s PathSet) Insert(path string) { s[path] = struct{}{} }

// Remove deletes path from the set. Removing an absent path is a no-op.
func (s PathSet) Remove(path string) { delete(s, path) }

// Has reports whether path is in the set.
func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the set's paths in lexical order.
func (s PathSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Glob expands a config pattern after home-directory expansion. Only
// existing filesystem entries are returned; a pattern matching nothing
// yields an empty slice. A malformed pattern fails with a *PatternError.
func (l *Locator) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(l.ExpandUser(pattern))
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return matches, nil
}

// KubeconfigPaths computes the set of kubeconfig files to manage. Entries
// from KUBECONFIG are gathered first, then the include patterns are merged
// in, then the exclude patterns remove their matches. Removal is final: a
// path excluded here cannot be re-added. Settings files are never part of
// the result, no matter how they were reached.
func (l *Locator) KubeconfigPaths(s *Settings) (PathSet, error) {
	paths := make(PathSet)

	for _, entry := range parseKubeconfigEnv() {
		switch {
		case isRegularFile(entry) && !IsSettingsFileName(entry):
			paths.Insert(entry)
		case isDir(entry):
			for _, pattern := range kubeconfigDirPatterns {
				matches, err := l.Glob(filepath.Join(entry, pattern))
				if err != nil {
					return nil, err
				}
				for _, match := range matches {
					if !IsSettingsFileName(match) {
						paths.Insert(match)
					}
				}
			}
		}
		// Anything else (missing path, settings file) is skipped silently.
	}

	for _, pattern := range s.Configs.Include {
		matches, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			paths.Insert(match)
		}
	}

	for _, pattern := range s.Configs.Exclude {
		matches, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			paths.Remove(match)
		}
	}

	return paths, nil
}
