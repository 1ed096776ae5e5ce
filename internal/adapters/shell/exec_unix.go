//go:build unix

package shell

import (
	"os"
	"syscall"
)

func replaceProcess(path string, argv, env []string) error {
	return syscall.Exec(path, argv, env) //nolint:gosec // hand-off to the resolved interpreter
}

// exitStatus maps a finished process to a shell-style exit status.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
