package domain

import (
	"os"
	"slices"
	"strings"
)

// Activation is the set of process-environment changes that make an environment active.
// It is computed without side effects and applied to an environment table at hand-off.
type Activation struct {
	// Set holds variables to define, replacing any previous value.
	Set map[string]string
	// Unset holds variables to remove.
	Unset []string
}

// Activate computes the activation for env against the given environment table.
// The previous PATH entries are kept, in order, after the environment's bin directory.
func Activate(env Environment, environ []string) Activation {
	path := env.BinDir()
	if prev, ok := Lookup(environ, EnvPath); ok && prev != "" {
		path += string(os.PathListSeparator) + prev
	}

	return Activation{
		Set: map[string]string{
			EnvVirtualEnv: env.Root(),
			EnvPath:       path,
		},
		Unset: []string{EnvPythonHome},
	}
}

// Apply returns a copy of environ with the activation applied.
// Untouched entries keep their order; defined variables follow in name order.
func (a Activation) Apply(environ []string) []string {
	out := make([]string, 0, len(environ)+len(a.Set))
	for _, entry := range environ {
		name, _, _ := strings.Cut(entry, "=")
		if _, ok := a.Set[name]; ok {
			continue
		}
		if slices.Contains(a.Unset, name) {
			continue
		}
		out = append(out, entry)
	}

	names := make([]string, 0, len(a.Set))
	for name := range a.Set {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		out = append(out, name+"="+a.Set[name])
	}
	return out
}

// Lookup returns the value of name in an environment table.
// The last definition wins, matching how the OS resolves duplicates.
func Lookup(environ []string, name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == name {
			value, found = v, true
		}
	}
	return value, found
}
