package domain

import "slices"

// Separator splits environment arguments from program arguments.
const Separator = "--"

// Invocation is a parsed piprun argument list.
type Invocation struct {
	Spec        EnvSpec
	ProgramArgs []string
}

// ParseInvocation splits args of the form
//
//	[interpreter] requirement... -- program-arg...
//
// The first token is taken as the interpreter when pathExists reports it as an existing path.
// A missing separator is a usage error, reported before pathExists is ever called.
func ParseInvocation(args []string, pathExists func(string) bool) (Invocation, error) {
	idx := slices.Index(args, Separator)
	if idx < 0 {
		return Invocation{}, ErrUsage
	}

	spec := ParseEnvSpec(args[:idx], pathExists)
	return Invocation{
		Spec:        spec,
		ProgramArgs: slices.Clone(args[idx+1:]),
	}, nil
}

// ParseEnvSpec parses "[interpreter] requirement..." into a spec.
func ParseEnvSpec(args []string, pathExists func(string) bool) EnvSpec {
	var spec EnvSpec
	if len(args) > 0 && pathExists != nil && pathExists(args[0]) {
		spec.Interpreter = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		spec.Requirements = slices.Clone(args)
	}
	return spec
}
