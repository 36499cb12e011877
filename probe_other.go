//go:build !linux

package arm64id

import (
	"context"

	"go.uber.org/zap"
)

// probeConfig holds the configuration for a probe operation.
// On non-Linux platforms this is a no-op placeholder.
type probeConfig struct{}

// ProbeOption configures a probe run.
type ProbeOption func(*probeConfig)

func Probe() (*Report, error) {
	return nil, ErrUnsupportedPlatform
}

func ProbeWith(_ ...ProbeOption) (*Report, error) {
	return nil, ErrUnsupportedPlatform
}

func ProbeContext(_ context.Context, _ ...ProbeOption) (*Report, error) {
	return nil, ErrUnsupportedPlatform
}

func WithRegistry(_ *Registry) ProbeOption { return func(*probeConfig) {} }
func WithAuxvPath(_ string) ProbeOption    { return func(*probeConfig) {} }
func WithWorkerPath(_ string) ProbeOption  { return func(*probeConfig) {} }
func WithLogger(_ *zap.Logger) ProbeOption { return func(*probeConfig) {} }
func WithoutRegisters() ProbeOption        { return func(*probeConfig) {} }
func WithoutCapabilities() ProbeOption     { return func(*probeConfig) {} }
