package arm64id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReading_String(t *testing.T) {
	tests := []struct {
		name string
		rd   Reading
		want string
	}{
		{
			name: "supported",
			rd:   Reading{Name: "S3_0_C0_C0_0", Alias: "midr_el1", Value: 0x410fd083, ProbeResult: ProbeResult{Supported: true}},
			want: "            midr_el1 = 0x00000000410fd083",
		},
		{
			name: "trapped",
			rd:   Reading{Name: "S3_3_C14_C2_0", Alias: "cntp_tval_el0"},
			want: "       cntp_tval_el0 = <invalid>",
		},
		{
			name: "no alias",
			rd:   Reading{Name: "S3_0_C0_C0_1", Alias: "S3_0_C0_C0_1", ProbeResult: ProbeResult{Supported: true}},
			want: "        S3_0_C0_C0_1 = 0x0000000000000000",
		},
		{
			name: "alias resolved when empty",
			rd:   Reading{Name: "S3_3_C0_C0_1", Value: 0x8444c004, ProbeResult: ProbeResult{Supported: true}},
			want: "             ctr_el0 = 0x000000008444c004",
		},
		{
			name: "long name is not truncated",
			rd:   Reading{Name: "S3_0_C0_C4_5", Alias: "a_very_long_register_name_el1"},
			want: "a_very_long_register_name_el1 = <invalid>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rd.String())
		})
	}
}

func TestCapabilitySet_String(t *testing.T) {
	t.Run("single bit", func(t *testing.T) {
		assert.Equal(t, " HWCAP: 0x0000000000000001\n  FP\n", Decode(CategoryHWCAP, 0x1).String())
	})

	t.Run("unknown bits", func(t *testing.T) {
		want := " HWCAP: 0x8000000000000003\n  FP\n  ASIMD\nUnknown caps: 0x8000000000000000\n"
		assert.Equal(t, want, Decode(CategoryHWCAP, 0x8000000000000003).String())
	})

	t.Run("hwcap2 header", func(t *testing.T) {
		assert.Equal(t, "HWCAP2: 0x0000000000000000\n", Decode(CategoryHWCAP2, 0).String())
	})
}

func TestReport_String(t *testing.T) {
	r := &Report{
		Registers: []Reading{
			{Name: "S3_0_C0_C0_0", Alias: "midr_el1", Value: 0x410fd083, ProbeResult: ProbeResult{Supported: true}},
			{Name: "S3_3_C14_C2_0", Alias: "cntp_tval_el0"},
			{Name: "S3_3_C14_C0_0", Alias: "cntfrq_el0", Value: 0x3b9aca0, ProbeResult: ProbeResult{Supported: true}},
		},
		Capabilities: []CapabilitySet{
			Decode(CategoryHWCAP, 0x3),
			Decode(CategoryHWCAP2, 0x2),
		},
	}

	want := strings.Join([]string{
		"            midr_el1 = 0x00000000410fd083",
		"       cntp_tval_el0 = <invalid>",
		"          cntfrq_el0 = 0x0000000003b9aca0",
		" HWCAP: 0x0000000000000003",
		"  FP",
		"  ASIMD",
		"HWCAP2: 0x0000000000000002",
		"  SVE2",
		"",
	}, "\n")
	assert.Equal(t, want, r.String())
}

func TestReport_StringEmpty(t *testing.T) {
	r := &Report{Capabilities: []CapabilitySet{Decode(CategoryHWCAP, 0x1)}}
	assert.Equal(t, " HWCAP: 0x0000000000000001\n  FP\n", r.String())
}
