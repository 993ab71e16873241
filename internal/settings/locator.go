package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kubie/pkg/logging"
)

const (
	// EnvKubeconfig is the search-path variable listing kubeconfig files
	// and directories, separated by the platform's list separator.
	EnvKubeconfig = "KUBECONFIG"
	// EnvXDGConfigHome overrides the XDG config directory used when
	// locating the settings file.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	configSubdir        = "kubie"
	defaultSettingsName = "kubie.yaml"
)

// settingsFileNames are the two recognized spellings of the settings
// filename, in lookup priority order.
var settingsFileNames = [...]string{"kubie.yaml", "kubie.yml"}

// IsSettingsFileName reports whether the path's filename is one of the
// recognized settings filenames.
func IsSettingsFileName(path string) bool {
	name := filepath.Base(path)
	return name == settingsFileNames[0] || name == settingsFileNames[1]
}

// Locator resolves the settings file path and the active kubeconfig set.
// It holds the user's home directory, resolved once at startup and passed
// in by the caller.
type Locator struct {
	home string
}

// NewLocator returns a Locator rooted at the given home directory.
func NewLocator(home string) *Locator {
	return &Locator{home: home}
}

// Home returns the home directory the locator was constructed with.
func (l *Locator) Home() string { return l.home }

// ExpandUser replaces a leading "~/" with the home directory. Any other
// form, including a bare "~" or "~user", is returned unchanged.
func (l *Locator) ExpandUser(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(l.home, rest)
	}
	return path
}

// parseKubeconfigEnv splits KUBECONFIG into its entries. An unset or empty
// variable yields no entries; empty segments are dropped.
func parseKubeconfigEnv() []string {
	var entries []string
	for _, entry := range filepath.SplitList(os.Getenv(EnvKubeconfig)) {
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// findSettingsInDir looks for a settings file inside dir, trying both
// recognized filenames in priority order.
func findSettingsInDir(dir string) (string, bool) {
	for _, name := range settingsFileNames {
		candidate := filepath.Join(dir, name)
		if isRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Path returns the settings file path, first match wins:
//
//  1. a KUBECONFIG entry that is itself an existing settings file,
//  2. a settings file inside a KUBECONFIG directory entry,
//  3. a settings file under $XDG_CONFIG_HOME/kubie (or ~/.config/kubie),
//  4. the default ~/.kube/kubie.yaml, which need not exist.
func (l *Locator) Path() string {
	for _, entry := range parseKubeconfigEnv() {
		if IsSettingsFileName(entry) && isRegularFile(entry) {
			return entry
		}
		if isDir(entry) {
			if found, ok := findSettingsInDir(entry); ok {
				return found
			}
		}
	}

	xdgConfig := os.Getenv(EnvXDGConfigHome)
	if xdgConfig == "" {
		xdgConfig = filepath.Join(l.home, ".config")
	}
	if found, ok := findSettingsInDir(filepath.Join(xdgConfig, configSubdir)); ok {
		return found
	}

	return filepath.Join(l.home, ".kube", defaultSettingsName)
}

// Load resolves the settings path and parses the file into a Settings
// record. A missing file is not an error; the defaults apply. In both
// cases the resolved path is appended to Configs.Exclude so the settings
// file can never be mistaken for a kubeconfig.
func (l *Locator) Load() (*Settings, error) {
	path := l.Path()
	s := DefaultSettings(l.home)

	if isRegularFile(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read settings file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		logging.Debug("settings", "loaded settings from %s", path)
	} else {
		logging.Debug("settings", "no settings file at %s, using defaults", path)
	}

	s.Configs.Exclude = append(s.Configs.Exclude, path)
	return s, nil
}

// isRegularFile reports whether path exists and is a regular file. Stat
// errors are treated as "does not exist".
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
