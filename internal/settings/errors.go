package settings

import "fmt"

// ParseError reports a settings file that exists but does not contain valid
// YAML. The whole load fails; there is no partial settings record.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse kubie config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PatternError reports a config glob pattern that could not be expanded,
// either from the include/exclude lists or derived from a KUBECONFIG
// directory entry. Resolution aborts without partial results.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid config file pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
