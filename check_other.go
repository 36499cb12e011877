//go:build !linux

package arm64id

// Check validates the specified requirements and returns a *[FeatureError]
// for the first unsatisfied requirement, or nil if all are met.
// On non-Linux platforms, Check always returns an unsupported-platform error.
func Check(_ ...Requirement) error {
	return ErrUnsupportedPlatform
}

// CheckWith is like [Check] with explicit probe options.
func CheckWith(_ []ProbeOption, _ ...Requirement) error {
	return ErrUnsupportedPlatform
}

// Diagnose returns a reason string explaining why a requirement is not met.
// On non-Linux platforms, the answer is always the same.
func (r *Report) Diagnose(_ Requirement) string {
	return "not supported (requires Linux)"
}
