package settings

import "path/filepath"

// DefaultSettings returns a fully populated Settings record for the given
// home directory. It is used both when no settings file exists and as the
// base that a parsed file is decoded over, so a field absent from the file
// keeps its default.
func DefaultSettings(home string) *Settings {
	return &Settings{
		Configs: Configs{
			Include: defaultIncludePatterns(home),
			Exclude: []string{},
		},
		Prompt: Prompt{
			ShowDepth: true,
		},
		Behavior: Behavior{
			ValidateNamespaces: ValidateNamespacesTrue,
			PrintContextInExec: ContextHeaderAuto,
		},
	}
}

// defaultIncludePatterns lists the conventional kubeconfig locations under
// the user's home directory.
func defaultIncludePatterns(home string) []string {
	kube := filepath.Join(home, ".kube")
	return []string{
		filepath.Join(kube, "config"),
		filepath.Join(kube, "*.yml"),
		filepath.Join(kube, "*.yaml"),
		filepath.Join(kube, "configs", "*.yml"),
		filepath.Join(kube, "configs", "*.yaml"),
		filepath.Join(kube, "kubie", "*.yml"),
		filepath.Join(kube, "kubie", "*.yaml"),
	}
}
