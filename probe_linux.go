//go:build linux

package arm64id

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// probeConfig holds the configuration for a probe operation.
type probeConfig struct {
	registry     *Registry
	only         []string
	auxvPath     string
	workerPath   string
	logger       *zap.Logger
	registers    bool
	capabilities bool
}

// ProbeOption configures a probe run.
type ProbeOption func(*probeConfig)

// WithRegistry probes the registers of reg instead of [DefaultRegistry].
// Worker processes must be able to find every probe of reg in the registry
// they pass to [MaybeRunWorker].
func WithRegistry(reg *Registry) ProbeOption {
	return func(c *probeConfig) {
		c.registry = reg
	}
}

// WithAuxvPath sets a custom path for the auxiliary vector.
// This is primarily for testing; production code uses /proc/self/auxv.
func WithAuxvPath(path string) ProbeOption {
	return func(c *probeConfig) {
		c.auxvPath = path
	}
}

// WithWorkerPath sets the executable started as probe worker.
// It defaults to the running executable.
func WithWorkerPath(path string) ProbeOption {
	return func(c *probeConfig) {
		c.workerPath = path
	}
}

// WithLogger sets the logger for worker and capability diagnostics.
func WithLogger(l *zap.Logger) ProbeOption {
	return func(c *probeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithoutRegisters skips the system register pass.
func WithoutRegisters() ProbeOption {
	return func(c *probeConfig) {
		c.registers = false
	}
}

// WithoutCapabilities skips the OS capability pass.
func WithoutCapabilities() ProbeOption {
	return func(c *probeConfig) {
		c.capabilities = false
	}
}

// withRegisters restricts the register pass to names, in that order.
// Names the registry does not know are left out of the report.
func withRegisters(names []string) ProbeOption {
	return func(c *probeConfig) {
		c.only = names
	}
}

// Probe reads every register of [DefaultRegistry] and decodes the OS
// capability words. Results are not cached.
func Probe() (*Report, error) {
	return ProbeWith()
}

// ProbeWith probes according to opts.
func ProbeWith(opts ...ProbeOption) (*Report, error) {
	return ProbeContext(context.Background(), opts...)
}

// ProbeContext is like [ProbeWith]; ctx bounds the worker processes.
func ProbeContext(ctx context.Context, opts ...ProbeOption) (*Report, error) {
	cfg := &probeConfig{
		auxvPath:     defaultAuxvPath,
		logger:       zap.NewNop(),
		registers:    true,
		capabilities: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	native := runtime.GOARCH == "arm64"
	if cfg.registers && cfg.registry == nil && !native {
		return nil, ErrUnsupportedPlatform
	}
	if cfg.capabilities && cfg.auxvPath == defaultAuxvPath && !native {
		return nil, ErrUnsupportedPlatform
	}

	report := &Report{}
	report.KernelVersion, report.Machine = probeUname()

	if cfg.registers {
		reg := cfg.registry
		if reg == nil {
			reg = DefaultRegistry()
		}
		// Registration ends before the first probe executes.
		reg.Freeze()

		probes := reg.snapshot()
		if cfg.only != nil {
			probes = subset(reg, cfg.only)
		}
		if len(probes) > 0 {
			rd, err := newReader(cfg)
			if err != nil {
				return nil, err
			}
			readings, err := rd.readAll(ctx, probes)
			if err != nil {
				return nil, fmt.Errorf("probe registers: %w", err)
			}
			report.Registers = readings
		}
	}

	if cfg.capabilities {
		report.Capabilities = readCapabilities(cfg.auxvPath, cfg.logger)
	}

	return report, nil
}

func subset(reg *Registry, names []string) []Entry {
	probes := make([]Entry, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if p, ok := reg.Lookup(name); ok {
			probes = append(probes, p)
		}
	}
	return probes
}

// probeUname returns the kernel release and machine strings.
func probeUname() (release, machine string) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return "", ""
	}
	return unix.ByteSliceToString(uname.Release[:]), unix.ByteSliceToString(uname.Machine[:])
}
