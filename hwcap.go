package arm64id

import (
	"fmt"
	"math/bits"
	"strings"
)

// Category selects one OS capability word.
type Category int

const (
	// CategoryHWCAP is the primary capability word (AT_HWCAP).
	CategoryHWCAP Category = iota
	// CategoryHWCAP2 is the extended capability word (AT_HWCAP2).
	CategoryHWCAP2
)

// hwcapCPUID is set when the kernel emulates EL0 reads of the ID registers.
const hwcapCPUID = 1 << 11

// Categories lists every category in report order.
var Categories = []Category{CategoryHWCAP, CategoryHWCAP2}

// Auxiliary vector tags, see include/uapi/linux/auxvec.h.
const (
	atNull   = 0
	atHWCAP  = 16
	atHWCAP2 = 26
)

func (c Category) String() string {
	switch c {
	case CategoryHWCAP:
		return "HWCAP"
	case CategoryHWCAP2:
		return "HWCAP2"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) auxvTag() uint64 {
	switch c {
	case CategoryHWCAP:
		return atHWCAP
	case CategoryHWCAP2:
		return atHWCAP2
	default:
		return atNull
	}
}

// Table returns the capability table for c in ascending bit order.
func (c Category) Table() []Capability {
	switch c {
	case CategoryHWCAP:
		return hwcaps
	case CategoryHWCAP2:
		return hwcaps2
	default:
		return nil
	}
}

// Capability is one named bit of a capability word.
type Capability struct {
	Category Category
	Mask     uint64
	Name     string
}

func (c Capability) String() string {
	return c.Name
}

// See arch/arm64/include/uapi/asm/hwcap.h
var hwcaps = []Capability{
	{CategoryHWCAP, 1 << 0, "FP"},
	{CategoryHWCAP, 1 << 1, "ASIMD"},
	{CategoryHWCAP, 1 << 2, "EVTSTRM"},
	{CategoryHWCAP, 1 << 3, "AES"},
	{CategoryHWCAP, 1 << 4, "PMULL"},
	{CategoryHWCAP, 1 << 5, "SHA1"},
	{CategoryHWCAP, 1 << 6, "SHA2"},
	{CategoryHWCAP, 1 << 7, "CRC32"},
	{CategoryHWCAP, 1 << 8, "ATOMICS"},
	{CategoryHWCAP, 1 << 9, "FPHP"},
	{CategoryHWCAP, 1 << 10, "ASIMDHP"},
	{CategoryHWCAP, 1 << 11, "CPUID"},
	{CategoryHWCAP, 1 << 12, "ASIMDRDM"},
	{CategoryHWCAP, 1 << 13, "JSCVT"},
	{CategoryHWCAP, 1 << 14, "FCMA"},
	{CategoryHWCAP, 1 << 15, "LRCPC"},
	{CategoryHWCAP, 1 << 16, "DCPOP"},
	{CategoryHWCAP, 1 << 17, "SHA3"},
	{CategoryHWCAP, 1 << 18, "SM3"},
	{CategoryHWCAP, 1 << 19, "SM4"},
	{CategoryHWCAP, 1 << 20, "ASIMDDP"},
	{CategoryHWCAP, 1 << 21, "SHA512"},
	{CategoryHWCAP, 1 << 22, "SVE"},
	{CategoryHWCAP, 1 << 23, "ASIMDFHM"},
	{CategoryHWCAP, 1 << 24, "DIT"},
	{CategoryHWCAP, 1 << 25, "USCAT"},
	{CategoryHWCAP, 1 << 26, "ILRCPC"},
	{CategoryHWCAP, 1 << 27, "FLAGM"},
	{CategoryHWCAP, 1 << 28, "SSBS"},
	{CategoryHWCAP, 1 << 29, "SB"},
	{CategoryHWCAP, 1 << 30, "PACA"},
	{CategoryHWCAP, 1 << 31, "PACG"},
	{CategoryHWCAP, 1 << 32, "GCS"},
}

var hwcaps2 = []Capability{
	{CategoryHWCAP2, 1 << 0, "DCPODP"},
	{CategoryHWCAP2, 1 << 1, "SVE2"},
	{CategoryHWCAP2, 1 << 2, "SVEAES"},
	{CategoryHWCAP2, 1 << 3, "SVEPMULL"},
	{CategoryHWCAP2, 1 << 4, "SVEBITPERM"},
	{CategoryHWCAP2, 1 << 5, "SVESHA3"},
	{CategoryHWCAP2, 1 << 6, "SVESM4"},
	{CategoryHWCAP2, 1 << 7, "FLAGM2"},
	{CategoryHWCAP2, 1 << 8, "FRINT"},
	{CategoryHWCAP2, 1 << 9, "SVEI8MM"},
	{CategoryHWCAP2, 1 << 10, "SVEF32MM"},
	{CategoryHWCAP2, 1 << 11, "SVEF64MM"},
	{CategoryHWCAP2, 1 << 12, "SVEBF16"},
	{CategoryHWCAP2, 1 << 13, "I8MM"},
	{CategoryHWCAP2, 1 << 14, "BF16"},
	{CategoryHWCAP2, 1 << 15, "DGH"},
	{CategoryHWCAP2, 1 << 16, "RNG"},
	{CategoryHWCAP2, 1 << 17, "BTI"},
	{CategoryHWCAP2, 1 << 18, "MTE"},
	{CategoryHWCAP2, 1 << 19, "ECV"},
	{CategoryHWCAP2, 1 << 20, "AFP"},
	{CategoryHWCAP2, 1 << 21, "RPRES"},
	{CategoryHWCAP2, 1 << 22, "MTE3"},
	{CategoryHWCAP2, 1 << 23, "SME"},
	{CategoryHWCAP2, 1 << 24, "SME_I16I64"},
	{CategoryHWCAP2, 1 << 25, "SME_F64F64"},
	{CategoryHWCAP2, 1 << 26, "SME_I8I32"},
	{CategoryHWCAP2, 1 << 27, "SME_F16F32"},
	{CategoryHWCAP2, 1 << 28, "SME_B16F32"},
	{CategoryHWCAP2, 1 << 29, "SME_F32F32"},
	{CategoryHWCAP2, 1 << 30, "SME_FA64"},
	{CategoryHWCAP2, 1 << 31, "WFXT"},
	{CategoryHWCAP2, 1 << 32, "EBF16"},
	{CategoryHWCAP2, 1 << 33, "SVE_EBF16"},
	{CategoryHWCAP2, 1 << 34, "CSSC"},
	{CategoryHWCAP2, 1 << 35, "RPRFM"},
	{CategoryHWCAP2, 1 << 36, "SVE2P1"},
	{CategoryHWCAP2, 1 << 37, "SME2"},
	{CategoryHWCAP2, 1 << 38, "SME2P1"},
	{CategoryHWCAP2, 1 << 39, "SME_I16I32"},
	{CategoryHWCAP2, 1 << 40, "SME_BI32I32"},
	{CategoryHWCAP2, 1 << 41, "SME_B16B16"},
	{CategoryHWCAP2, 1 << 42, "SME_F16F16"},
	{CategoryHWCAP2, 1 << 43, "MOPS"},
	{CategoryHWCAP2, 1 << 44, "HBC"},
	{CategoryHWCAP2, 1 << 45, "SVE_B16B16"},
	{CategoryHWCAP2, 1 << 46, "LRCPC3"},
	{CategoryHWCAP2, 1 << 47, "LSE128"},
	{CategoryHWCAP2, 1 << 48, "FPMR"},
	{CategoryHWCAP2, 1 << 49, "LUT"},
	{CategoryHWCAP2, 1 << 50, "FAMINMAX"},
	{CategoryHWCAP2, 1 << 51, "F8CVT"},
	{CategoryHWCAP2, 1 << 52, "F8FMA"},
	{CategoryHWCAP2, 1 << 53, "F8DP4"},
	{CategoryHWCAP2, 1 << 54, "F8DP2"},
	{CategoryHWCAP2, 1 << 55, "F8E4M3"},
	{CategoryHWCAP2, 1 << 56, "F8E5M2"},
	{CategoryHWCAP2, 1 << 57, "SME_LUTV2"},
	{CategoryHWCAP2, 1 << 58, "SME_F8F16"},
	{CategoryHWCAP2, 1 << 59, "SME_F8F32"},
	{CategoryHWCAP2, 1 << 60, "SME_SF8FMA"},
	{CategoryHWCAP2, 1 << 61, "SME_SF8DP4"},
	{CategoryHWCAP2, 1 << 62, "SME_SF8DP2"},
	{CategoryHWCAP2, 1 << 63, "POE"},
}

// Decode splits mask into the names of its recognised bits, lowest bit
// first, and the residual mask of bits the table for c does not name.
func Decode(c Category, mask uint64) CapabilitySet {
	return decodeWith(c, c.Table(), mask)
}

func decodeWith(c Category, table []Capability, mask uint64) CapabilitySet {
	names := make(map[uint64]string, len(table))
	for _, entry := range table {
		names[entry.Mask] = entry.Name
	}

	cs := CapabilitySet{Category: c, Mask: mask}
	for work := mask; work != 0; {
		bit := uint64(1) << bits.TrailingZeros64(work)
		if name, ok := names[bit]; ok {
			cs.Names = append(cs.Names, name)
		} else {
			cs.Unknown |= bit
		}
		work &^= bit
	}
	return cs
}

// LookupCapability finds a capability by name in either category.
// Matching is case-insensitive and accepts an optional "HWCAP_" or
// "HWCAP2_" prefix.
func LookupCapability(name string) (Capability, bool) {
	want := strings.ToUpper(strings.TrimSpace(name))
	category := -1
	switch {
	case strings.HasPrefix(want, "HWCAP2_"):
		want, category = strings.TrimPrefix(want, "HWCAP2_"), int(CategoryHWCAP2)
	case strings.HasPrefix(want, "HWCAP_"):
		want, category = strings.TrimPrefix(want, "HWCAP_"), int(CategoryHWCAP)
	}

	for _, c := range Categories {
		if category >= 0 && int(c) != category {
			continue
		}
		for _, entry := range c.Table() {
			if entry.Name == want {
				return entry, true
			}
		}
	}
	return Capability{}, false
}

// AllCapabilities returns every known capability, HWCAP first.
func AllCapabilities() []Capability {
	all := make([]Capability, 0, len(hwcaps)+len(hwcaps2))
	all = append(all, hwcaps...)
	return append(all, hwcaps2...)
}

// CapabilityNames returns the lower-case names of [AllCapabilities].
func CapabilityNames() []string {
	all := AllCapabilities()
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, strings.ToLower(c.Name))
	}
	return names
}
