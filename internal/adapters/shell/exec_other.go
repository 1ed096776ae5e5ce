//go:build !unix

package shell

import (
	"errors"
	"os"
)

func replaceProcess(_ string, _, _ []string) error {
	return errors.ErrUnsupported
}

func exitStatus(state *os.ProcessState) int {
	return state.ExitCode()
}
