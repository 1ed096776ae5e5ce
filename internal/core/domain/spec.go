package domain

import "slices"

// EnvSpec describes the dependency set of an environment.
type EnvSpec struct {
	// Interpreter is the interpreter the environment is created for.
	// Empty means the builder's default.
	Interpreter string
	// Requirements are installer arguments, in the order they were declared.
	Requirements []string
}

// Equal reports whether two specs describe the same environment.
func (s EnvSpec) Equal(other EnvSpec) bool {
	return s.Interpreter == other.Interpreter && slices.Equal(s.Requirements, other.Requirements)
}

// Key returns the environment key for the spec.
func (s EnvSpec) Key() string {
	return GenerateEnvKey(s)
}
