package domain_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/piprun/internal/core/domain"
)

func TestActivate(t *testing.T) {
	env := domain.NewEnvironment("/cache", domain.EnvSpec{Requirements: []string{"requests"}})
	sep := string(os.PathListSeparator)

	act := domain.Activate(env, []string{"HOME=/home/me", "PATH=/usr/bin" + sep + "/bin"})

	assert.Equal(t, env.Root(), act.Set["VIRTUAL_ENV"])
	assert.Equal(t, env.BinDir()+sep+"/usr/bin"+sep+"/bin", act.Set["PATH"])
	assert.Equal(t, []string{"PYTHONHOME"}, act.Unset)
}

func TestActivate_EmptyPath(t *testing.T) {
	env := domain.NewEnvironment("/cache", domain.EnvSpec{})

	for name, environ := range map[string][]string{
		"unset": {"HOME=/home/me"},
		"empty": {"PATH="},
	} {
		t.Run(name, func(t *testing.T) {
			act := domain.Activate(env, environ)
			assert.Equal(t, env.BinDir(), act.Set["PATH"])
		})
	}
}

func TestActivation_Apply(t *testing.T) {
	env := domain.NewEnvironment("/cache", domain.EnvSpec{})
	sep := string(os.PathListSeparator)
	environ := []string{
		"HOME=/home/me",
		"PATH=/usr/bin",
		"PYTHONHOME=/opt/python",
		"VIRTUAL_ENV=/old/env",
		"LANG=C",
	}

	got := domain.Activate(env, environ).Apply(environ)

	assert.Equal(t, []string{
		"HOME=/home/me",
		"LANG=C",
		"PATH=" + env.BinDir() + sep + "/usr/bin",
		"VIRTUAL_ENV=" + env.Root(),
	}, got)
	assert.Len(t, environ, 5, "input must not be modified")
}

func TestLookup(t *testing.T) {
	environ := []string{"A=1", "B=", "A=2", "MALFORMED"}

	v, ok := domain.Lookup(environ, "A")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = domain.Lookup(environ, "B")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = domain.Lookup(environ, "MALFORMED")
	assert.False(t, ok)
}
