package arm64id

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned on platforms where system registers
// cannot be probed (anything other than Linux, or a non-arm64 CPU when the
// default registry is used).
var ErrUnsupportedPlatform = errors.New("arm64id: unsupported platform (requires linux/arm64)")

// ProbeResult represents the outcome of a single probe.
type ProbeResult struct {
	// Supported indicates whether the register could be read or the
	// capability category is reported by the kernel.
	Supported bool
	// Error is non-nil if the probe itself failed (not just unsupported).
	Error error
}

// Reading is the result of probing one system register.
type Reading struct {
	// Name is the canonical identifier, e.g. "S3_0_C0_C0_0".
	Name string
	// Alias is the friendly name, or Name when no alias exists.
	Alias string
	// Value is only meaningful when Supported is true.
	Value uint64

	ProbeResult
}

// CapabilitySet is one decoded OS capability word.
type CapabilitySet struct {
	Category Category
	// Mask is the raw value reported by the kernel.
	Mask uint64
	// Names lists the recognised bits in ascending bit order.
	Names []string
	// Unknown holds the bits not present in the category's table.
	Unknown uint64
}

// Report holds the results of a full probe run.
type Report struct {
	// Registers in registry order.
	Registers []Reading
	// Capabilities holds only the categories the kernel reported.
	Capabilities []CapabilitySet

	// Metadata
	KernelVersion string
	Machine       string
}

// Capability returns the decoded set for c, if the kernel reported it.
func (r *Report) Capability(c Category) (CapabilitySet, bool) {
	for _, cs := range r.Capabilities {
		if cs.Category == c {
			return cs, true
		}
	}
	return CapabilitySet{}, false
}

// Register returns the reading for a canonical name or alias.
func (r *Report) Register(name string) (Reading, bool) {
	for _, rd := range r.Registers {
		if rd.Name == name || rd.Alias == name {
			return rd, true
		}
	}
	return Reading{}, false
}

// FeatureError represents an unmet requirement.
type FeatureError struct {
	Feature string
	Reason  string
	Err     error
}

func (e *FeatureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feature %s: %s: %v", e.Feature, e.Reason, e.Err)
	}
	return fmt.Sprintf("feature %s: %s", e.Feature, e.Reason)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}

var (
	// ErrWorkerSetup is returned when a probe worker cannot be started or
	// cannot prepare itself to run probes. It is fatal for the whole run.
	ErrWorkerSetup = errors.New("probe worker setup failed")
	// ErrWorkerProtocol is returned when a probe worker reports results that
	// do not match the probes it was asked to run.
	ErrWorkerProtocol = errors.New("probe worker protocol violation")
)
