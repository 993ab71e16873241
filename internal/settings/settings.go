package settings

// Settings is the top-level record parsed from kubie's settings file. It is
// built once at startup and treated as read-only afterwards; the only
// mutation is the exclude entry appended by Load.
type Settings struct {
	// Shell overrides the shell kubie spawns. Empty means unset; resolution
	// is left to the caller.
	Shell string `yaml:"shell,omitempty"`
	// DefaultEditor is used by edit commands when $EDITOR is not set.
	DefaultEditor string `yaml:"default_editor,omitempty"`

	Configs  Configs  `yaml:"configs"`
	Prompt   Prompt   `yaml:"prompt"`
	Behavior Behavior `yaml:"behavior"`
	Hooks    Hooks    `yaml:"hooks"`
	Fzf      Fzf      `yaml:"fzf"`
}

// Configs holds the glob patterns that select and reject kubeconfig files.
// Patterns are evaluated in sequence order, excludes strictly after all
// includes.
type Configs struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Prompt configures the shell prompt kubie installs in sub-shells.
type Prompt struct {
	Disable             bool `yaml:"disable"`
	ShowDepth           bool `yaml:"show_depth"`
	ZshUseRPS1          bool `yaml:"zsh_use_rps1"`
	FishUseRprompt      bool `yaml:"fish_use_rprompt"`
	XonshUseRightPrompt bool `yaml:"xonsh_use_right_prompt"`
}

// Hooks are shell snippets run when a context is entered or left.
type Hooks struct {
	StartCtx string `yaml:"start_ctx"`
	StopCtx  string `yaml:"stop_ctx"`
}

// Fzf configures the fuzzy finder used by selection commands.
type Fzf struct {
	Mouse      bool   `yaml:"mouse"`
	Reverse    bool   `yaml:"reverse"`
	IgnoreCase bool   `yaml:"ignore_case"`
	InfoHidden bool   `yaml:"info_hidden"`
	Prompt     string `yaml:"prompt,omitempty"`
	Color      string `yaml:"color,omitempty"`
}
