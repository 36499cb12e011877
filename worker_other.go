//go:build !linux

package arm64id

// IsWorker reports whether this process was started as a probe worker.
// Probe workers only exist on Linux.
func IsWorker() bool { return false }

// MaybeRunWorker is a no-op on non-Linux platforms.
func MaybeRunWorker(_ *Registry) {}
