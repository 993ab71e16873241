// Package settings locates, loads and applies kubie's own settings file.
//
// kubie manages many kubeconfig files but keeps its own configuration in a
// single YAML settings file, found by checking (in order) the KUBECONFIG
// environment variable, the XDG config directory and a fixed default under
// the user's home directory. Two filename spellings are recognized
// everywhere a settings file is looked for: "kubie.yaml" and "kubie.yml".
//
// # Settings file
//
// The settings file uses YAML with the following sections:
//
//	shell: bash
//	default_editor: vim
//
//	configs:
//	  include:
//	    - ~/.kube/config
//	    - ~/.kube/*.yml
//	  exclude:
//	    - ~/.kube/cache.yaml
//
//	prompt:
//	  disable: false
//	  show_depth: true
//
//	behavior:
//	  validate_namespaces: true
//	  print_context_in_exec: auto
//
//	hooks:
//	  start_ctx: ""
//	  stop_ctx: ""
//
// When no file is present the defaults from DefaultSettings apply, which
// include the conventional kubeconfig locations under ~/.kube.
//
// # Kubeconfig discovery
//
// The set of kubeconfig files kubie manages is computed fresh on every
// call: entries from KUBECONFIG are gathered first, then the include
// patterns are expanded and merged in, then the exclude patterns remove
// their matches. Exclusion is applied strictly after all includes, so an
// excluded path stays out no matter how many patterns matched it. The
// settings file itself is always appended to the exclude list at load
// time and can never end up in the result.
package settings
