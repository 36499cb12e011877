//go:build linux

package arm64id

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorker_UnknownProbe(t *testing.T) {
	var out bytes.Buffer
	err := runWorker(fixtureRegistry(probeOK1), &out, []string{"fixture_ok_1", "nope"})
	require.ErrorIs(t, err, ErrWorkerSetup)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Zero(t, out.Len(), "nothing may run when a probe is unknown")
}

// The test binary is a worker too (see TestMain), so its raw output can be
// checked directly.
func TestWorker_Output(t *testing.T) {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), workerEnv+"=fixture_ok_3,,fixture_ok_1")
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "fixture_ok_3 ffffffffffffffff\nfixture_ok_1 0000000000001111\n", string(out))
}

func TestWorker_Trap(t *testing.T) {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), workerEnv+"=fixture_ok_2,fixture_trap_1,fixture_ok_1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	require.Error(t, err)

	outcome, _ := classifyExit(err, stderr.String())
	assert.Equal(t, workerTrapped, outcome)
	assert.Equal(t, "fixture_ok_2 00000000deadbeef\n", string(out))
}

func TestWorker_SetupExitCode(t *testing.T) {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), workerEnv+"=fixture_unknown")
	err := cmd.Run()

	var ee *exec.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitWorkerSetup, ee.ExitCode())
}

func TestMaybeRunWorker_NotAWorker(t *testing.T) {
	require.False(t, IsWorker())
	// Returns immediately when the worker variable is absent.
	MaybeRunWorker(fixtureRegistry(probeOK1))
}
