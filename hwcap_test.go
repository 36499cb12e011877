package arm64id

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("single known bit", func(t *testing.T) {
		cs := Decode(CategoryHWCAP, 0x1)
		assert.Equal(t, []string{"FP"}, cs.Names)
		assert.Zero(t, cs.Unknown)
		assert.Equal(t, uint64(0x1), cs.Mask)
	})

	t.Run("unknown high bit", func(t *testing.T) {
		cs := Decode(CategoryHWCAP, 1<<63|1<<1|1<<0)
		assert.Equal(t, []string{"FP", "ASIMD"}, cs.Names)
		assert.Equal(t, uint64(0x8000000000000000), cs.Unknown)
	})

	t.Run("zero mask", func(t *testing.T) {
		cs := Decode(CategoryHWCAP2, 0)
		assert.Empty(t, cs.Names)
		assert.Zero(t, cs.Unknown)
	})

	t.Run("hwcap2 uses its own table", func(t *testing.T) {
		cs := Decode(CategoryHWCAP2, 1<<63|1<<33)
		assert.Equal(t, []string{"SVE_EBF16", "POE"}, cs.Names)
		assert.Zero(t, cs.Unknown)
	})

	t.Run("unknown category", func(t *testing.T) {
		cs := Decode(Category(9), 0xff)
		assert.Empty(t, cs.Names)
		assert.Equal(t, uint64(0xff), cs.Unknown)
	})
}

func TestDecode_PartitionsMask(t *testing.T) {
	masks := []uint64{0, 1, 0xffffffffffffffff, 0x1_ffff_ffff, 0x8000_0000_0000_0000, 0x0123_4567_89ab_cdef}
	for _, c := range Categories {
		for _, mask := range masks {
			cs := Decode(c, mask)

			var classified uint64
			for _, name := range cs.Names {
				entry, ok := LookupCapability(c.String() + "_" + name)
				require.True(t, ok, "%s not found", name)
				classified |= entry.Mask
			}
			assert.Equal(t, mask, classified|cs.Unknown, "%s %#x", c, mask)
			assert.Zero(t, classified&cs.Unknown, "%s %#x", c, mask)
			assert.Equal(t, cs, Decode(c, mask), "decode must be deterministic")
		}
	}
}

func TestTables(t *testing.T) {
	for _, c := range Categories {
		t.Run(c.String(), func(t *testing.T) {
			prev := -1
			for _, entry := range c.Table() {
				assert.Equal(t, c, entry.Category)
				assert.Equal(t, 1, bits.OnesCount64(entry.Mask), "%s must be a single bit", entry.Name)
				bit := bits.TrailingZeros64(entry.Mask)
				assert.Greater(t, bit, prev, "%s out of order", entry.Name)
				prev = bit
			}
		})
	}
	assert.Len(t, CategoryHWCAP.Table(), 33)
	assert.Len(t, CategoryHWCAP2.Table(), 64)
}

func TestLookupCapability(t *testing.T) {
	tests := []struct {
		in       string
		wantOK   bool
		wantCat  Category
		wantMask uint64
	}{
		{"fp", true, CategoryHWCAP, 1 << 0},
		{"SVE", true, CategoryHWCAP, 1 << 22},
		{" sve2 ", true, CategoryHWCAP2, 1 << 1},
		{"HWCAP_CPUID", true, CategoryHWCAP, hwcapCPUID},
		{"hwcap2_sme_f64f64", true, CategoryHWCAP2, 1 << 25},
		{"HWCAP_SVE2", false, 0, 0},
		{"nope", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LookupCapability(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantCat, got.Category)
			assert.Equal(t, tt.wantMask, got.Mask)
		})
	}
}

func TestCapabilityNames(t *testing.T) {
	names := CapabilityNames()
	require.Len(t, names, len(AllCapabilities()))
	assert.Equal(t, "fp", names[0])
	assert.Equal(t, "poe", names[len(names)-1])

	seen := map[string]struct{}{}
	for _, n := range names {
		assert.Equal(t, strings.ToLower(n), n)
		_, dup := seen[n]
		assert.False(t, dup, "duplicate capability name %s", n)
		seen[n] = struct{}{}
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "HWCAP", CategoryHWCAP.String())
	assert.Equal(t, "HWCAP2", CategoryHWCAP2.String())
	assert.Equal(t, "Category(7)", Category(7).String())
}
