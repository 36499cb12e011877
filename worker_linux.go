//go:build linux

package arm64id

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// workerEnv carries the comma-separated probe names a worker must run.
const workerEnv = "ARM64ID_WORKER"

// Worker exit codes other than 0 and death by SIGILL.
const (
	exitWorkerFailure = 1
	exitWorkerSetup   = 3
)

// kernelSigaction is struct sigaction as rt_sigaction(2) takes it.
// The zero value is SIG_DFL with no flags and an empty mask.
type kernelSigaction struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

// IsWorker reports whether this process was started as a probe worker.
func IsWorker() bool {
	_, ok := os.LookupEnv(workerEnv)
	return ok
}

// MaybeRunWorker turns the process into a probe worker when it was started
// as one, and exits once every requested probe has run. It returns
// immediately otherwise. Call it first thing in main (or TestMain), with a
// registry containing every probe the supervisor may ask for.
func MaybeRunWorker(reg *Registry) {
	names, ok := os.LookupEnv(workerEnv)
	if !ok {
		return
	}

	err := runWorker(reg, os.Stdout, strings.Split(names, ","))
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "arm64id worker: %v\n", err)
	if errors.Is(err, ErrWorkerSetup) {
		os.Exit(exitWorkerSetup)
	}
	os.Exit(exitWorkerFailure)
}

// runWorker reads the named probes in order, reporting one "<name> <value>"
// line per successful read. A probe whose register is not implemented
// kills the process with SIGILL before its line is written.
func runWorker(reg *Registry, w io.Writer, names []string) error {
	probes := make([]Entry, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		p, ok := reg.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: unknown probe %q", ErrWorkerSetup, name)
		}
		probes = append(probes, p)
	}

	// A trap is an expected outcome; it must not leave a core file behind.
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &unix.Rlimit{}); err != nil {
		return fmt.Errorf("%w: disable core dumps: %v", ErrWorkerSetup, err)
	}
	if err := restoreDefaultSIGILL(); err != nil {
		return fmt.Errorf("%w: restore SIGILL disposition: %v", ErrWorkerSetup, err)
	}

	for _, p := range probes {
		v := p.read()
		if _, err := fmt.Fprintf(w, "%s %016x\n", p.name, v); err != nil {
			return fmt.Errorf("report %s: %w", p.name, err)
		}
	}
	return nil
}

// restoreDefaultSIGILL replaces the Go runtime's SIGILL handler with the
// kernel default, so a trapping MRS terminates the worker by SIGILL instead
// of a runtime throw.
func restoreDefaultSIGILL() error {
	var act kernelSigaction
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION,
		uintptr(unix.SIGILL), uintptr(unsafe.Pointer(&act)), 0,
		unsafe.Sizeof(act.mask), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
