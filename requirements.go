package arm64id

import (
	"fmt"
	"strings"

	"github.com/leodido/arm64id/internal/sysreg"
)

// Requirement describes a gate condition consumable by [Check].
//
// Built-in implementations include:
//   - [Capability]
//   - [RegisterRequirement]
//   - [RequirementGroup]
type Requirement interface {
	isRequirement()
}

// RequirementGroup is a reusable set of [Requirement] items.
type RequirementGroup []Requirement

// RegisterRequirement requires that a system register can be read from EL0
// without trapping.
type RegisterRequirement struct {
	// Name is the generic identifier (e.g. "S3_0_C0_C4_4").
	Name string
}

func (r RegisterRequirement) String() string {
	return Alias(r.Name)
}

// RequireRegister creates a requirement for a register given either its
// generic identifier or its architectural alias.
func RequireRegister(name string) RegisterRequirement {
	name = strings.TrimSpace(name)
	if r, err := sysreg.Parse(name); err == nil {
		return RegisterRequirement{Name: r.String()}
	}
	return RegisterRequirement{Name: resolve(strings.ToLower(name))}
}

// ParseRequirement turns a capability name, register identifier or register
// alias into a requirement.
func ParseRequirement(name string) (Requirement, error) {
	if c, ok := LookupCapability(name); ok {
		return c, nil
	}
	req := RequireRegister(name)
	if _, err := sysreg.Parse(req.Name); err != nil {
		return nil, fmt.Errorf("unknown capability or register %q", name)
	}
	return req, nil
}

func (Capability) isRequirement()          {}
func (RegisterRequirement) isRequirement() {}
func (RequirementGroup) isRequirement()    {}

type requirementSet struct {
	capabilities []Capability
	registers    []string

	seenCapabilities map[Capability]struct{}
	seenRegisters    map[string]struct{}
}

func normalizeRequirements(required []Requirement) requirementSet {
	rs := requirementSet{
		seenCapabilities: map[Capability]struct{}{},
		seenRegisters:    map[string]struct{}{},
	}
	for _, req := range required {
		rs.add(req)
	}
	return rs
}

func (rs *requirementSet) add(req Requirement) {
	switch r := req.(type) {
	case Capability:
		if _, ok := rs.seenCapabilities[r]; ok {
			return
		}
		rs.seenCapabilities[r] = struct{}{}
		rs.capabilities = append(rs.capabilities, r)
	case RegisterRequirement:
		if _, ok := rs.seenRegisters[r.Name]; ok {
			return
		}
		rs.seenRegisters[r.Name] = struct{}{}
		rs.registers = append(rs.registers, r.Name)
	case RequirementGroup:
		for _, nested := range r {
			if nested == nil {
				continue
			}
			rs.add(nested)
		}
	}
}
