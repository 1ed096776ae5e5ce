package shell

// SetExecFunc replaces the process-replacement primitive.
func (e *Executor) SetExecFunc(fn func(path string, argv, env []string) error) {
	e.execFn = fn
}

// LookPath exposes lookPath for tests.
var LookPath = lookPath
