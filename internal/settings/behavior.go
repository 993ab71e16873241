package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Behavior tunes how kubie commands act.
type Behavior struct {
	ValidateNamespaces           ValidateNamespacesBehavior `yaml:"validate_namespaces"`
	PrintContextInExec           ContextHeaderBehavior      `yaml:"print_context_in_exec"`
	AllowMultipleContextPatterns bool                       `yaml:"allow_multiple_context_patterns"`
}

// ContextHeaderBehavior decides whether exec prints a context header
// before command output.
type ContextHeaderBehavior string

const (
	ContextHeaderAuto   ContextHeaderBehavior = "auto"
	ContextHeaderAlways ContextHeaderBehavior = "always"
	ContextHeaderNever  ContextHeaderBehavior = "never"
)

// stdoutIsTerminal is swapped out in tests.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldPrintHeaders reports whether a context header should be printed.
// Auto mode prints only when stdout is a terminal.
func (b ContextHeaderBehavior) ShouldPrintHeaders() bool {
	switch b {
	case ContextHeaderAlways:
		return true
	case ContextHeaderNever:
		return false
	default:
		return stdoutIsTerminal()
	}
}

// UnmarshalYAML validates the three accepted spellings.
func (b *ContextHeaderBehavior) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("print_context_in_exec must be a scalar, got %s", node.Tag)
	}
	switch strings.ToLower(node.Value) {
	case "auto":
		*b = ContextHeaderAuto
	case "always":
		*b = ContextHeaderAlways
	case "never":
		*b = ContextHeaderNever
	default:
		return fmt.Errorf("invalid print_context_in_exec value %q, expected auto, always or never", node.Value)
	}
	return nil
}

// ValidateNamespacesBehavior decides whether namespace names are checked
// against the cluster before switching.
type ValidateNamespacesBehavior string

const (
	ValidateNamespacesTrue    ValidateNamespacesBehavior = "true"
	ValidateNamespacesFalse   ValidateNamespacesBehavior = "false"
	ValidateNamespacesPartial ValidateNamespacesBehavior = "partial"
)

// CanListNamespaces reports whether this mode is allowed to list the
// cluster's namespaces.
func (v ValidateNamespacesBehavior) CanListNamespaces() bool {
	return v == ValidateNamespacesTrue || v == ValidateNamespacesPartial
}

// UnmarshalYAML accepts the YAML booleans true/false as well as the
// string spellings, since the settings format predates the partial mode.
func (v *ValidateNamespacesBehavior) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("validate_namespaces must be a scalar, got %s", node.Tag)
	}
	switch strings.ToLower(node.Value) {
	case "true":
		*v = ValidateNamespacesTrue
	case "false":
		*v = ValidateNamespacesFalse
	case "partial":
		*v = ValidateNamespacesPartial
	default:
		return fmt.Errorf("invalid validate_namespaces value %q, expected true, false or partial", node.Value)
	}
	return nil
}
