//go:build linux

package arm64id

import (
	"fmt"

	"github.com/leodido/arm64id/internal/sysreg"
)

// Check validates the specified requirements and returns a *[FeatureError]
// for the first unsatisfied requirement, or nil if all are met.
// Capabilities are checked before registers.
func Check(required ...Requirement) error {
	return CheckWith(nil, required...)
}

// CheckWith is like [Check] with explicit probe options.
func CheckWith(opts []ProbeOption, required ...Requirement) error {
	rs := normalizeRequirements(required)

	probeOpts := append([]ProbeOption{}, opts...)
	if len(rs.registers) == 0 {
		probeOpts = append(probeOpts, WithoutRegisters())
	} else {
		probeOpts = append(probeOpts, withRegisters(rs.registers))
	}
	report, err := ProbeWith(probeOpts...)
	if err != nil {
		return fmt.Errorf("probe features: %w", err)
	}

	for _, c := range rs.capabilities {
		cs, reported := report.Capability(c.Category)
		if reported && cs.Mask&c.Mask != 0 {
			continue
		}
		return &FeatureError{
			Feature: c.Category.String() + "_" + c.Name,
			Reason:  report.Diagnose(c),
		}
	}

	for _, name := range rs.registers {
		req := RegisterRequirement{Name: name}
		rd, known := report.Register(name)
		if !known {
			return &FeatureError{Feature: req.String(), Reason: "unknown register"}
		}
		if !rd.Supported {
			return &FeatureError{
				Feature: req.String(),
				Reason:  report.Diagnose(req),
				Err:     rd.Error,
			}
		}
	}

	return nil
}

// Diagnose returns a reason string explaining why a requirement is not met.
func (r *Report) Diagnose(req Requirement) string {
	switch q := req.(type) {
	case Capability:
		if _, reported := r.Capability(q.Category); !reported {
			return fmt.Sprintf("kernel does not report AT_%s; kernel too old or capability word unavailable", q.Category)
		}
		return fmt.Sprintf("%s_%s not set; the CPU lacks the feature or the kernel does not enable it", q.Category, q.Name)
	case RegisterRequirement:
		rd, known := r.Register(q.Name)
		if !known {
			return "unknown register"
		}
		if rd.Error != nil {
			return rd.Error.Error()
		}
		reg, err := sysreg.Parse(q.Name)
		if err == nil && reg.IsIDSpace() {
			if cs, ok := r.Capability(CategoryHWCAP); ok && cs.Mask&hwcapCPUID == 0 {
				return "ID register access is not emulated for EL0 (HWCAP_CPUID not set)"
			}
		}
		return "register not implemented or not accessible from EL0 on this CPU"
	}
	return "not supported"
}
