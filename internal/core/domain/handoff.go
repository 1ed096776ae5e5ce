package domain

// HandoffMode selects how control passes to the interpreter.
type HandoffMode string

const (
	// HandoffExec replaces the current process image.
	HandoffExec HandoffMode = "exec"
	// HandoffSpawn runs the interpreter as a child and propagates its exit status.
	HandoffSpawn HandoffMode = "spawn"
)

// Valid reports whether m is a known mode.
func (m HandoffMode) Valid() bool {
	return m == HandoffExec || m == HandoffSpawn
}

// Handoff describes the program started inside an activated environment.
type Handoff struct {
	// Program is resolved against the PATH in Env.
	Program string
	// Args are passed after Program; Program itself is argv[0].
	Args []string
	// Env is the full environment table of the new program.
	Env []string
}

// Argv returns the complete argument vector.
func (h Handoff) Argv() []string {
	argv := make([]string, 0, len(h.Args)+1)
	argv = append(argv, h.Program)
	return append(argv, h.Args...)
}
