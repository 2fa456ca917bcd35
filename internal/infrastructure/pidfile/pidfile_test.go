package pidfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_WritesCurrentPID(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "metrics.pid"))

	require.NoError(t, p.Acquire())

	data, err := os.ReadFile(p.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))

	require.NoError(t, p.Release())
	_, err = os.Stat(p.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestAcquire_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0644))

	assert.NoError(t, New(path).Acquire())
}

func TestAcquire_RejectsLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.pid")
	// PID 1 always exists on unix hosts
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0644))

	err := New(path).Acquire()
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquire_ReentrantForSameProcess(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "metrics.pid"))

	require.NoError(t, p.Acquire())
	assert.NoError(t, p.Acquire())
}

func TestRelease_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, New(filepath.Join(t.TempDir(), "absent.pid")).Release())
}
