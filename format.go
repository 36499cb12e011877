package arm64id

import (
	"fmt"
	"strings"
)

// invalidValue is printed in place of a register that could not be read.
const invalidValue = "<invalid>"

// String renders the report: one line per register, then one section per
// reported capability category.
func (r *Report) String() string {
	var b strings.Builder

	for _, rd := range r.Registers {
		writeReading(&b, rd)
	}
	for _, cs := range r.Capabilities {
		writeCapabilities(&b, cs)
	}

	return b.String()
}

// String renders the reading as a single line without trailing newline.
func (rd Reading) String() string {
	var b strings.Builder
	writeReading(&b, rd)
	return strings.TrimSuffix(b.String(), "\n")
}

// String renders the header line, one indented line per recognised bit and,
// when needed, the residual unknown bits.
func (cs CapabilitySet) String() string {
	var b strings.Builder
	writeCapabilities(&b, cs)
	return b.String()
}

func writeReading(b *strings.Builder, rd Reading) {
	name := rd.Alias
	if name == "" {
		name = Alias(rd.Name)
	}
	if rd.Supported {
		fmt.Fprintf(b, "%20s = 0x%016x\n", name, rd.Value)
	} else {
		fmt.Fprintf(b, "%20s = %s\n", name, invalidValue)
	}
}

func writeCapabilities(b *strings.Builder, cs CapabilitySet) {
	fmt.Fprintf(b, "%6s: 0x%016x\n", cs.Category, cs.Mask)
	for _, name := range cs.Names {
		fmt.Fprintf(b, "  %s\n", name)
	}
	if cs.Unknown != 0 {
		fmt.Fprintf(b, "Unknown caps: 0x%x\n", cs.Unknown)
	}
}
