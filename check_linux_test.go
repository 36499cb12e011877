//go:build linux

package arm64id

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkOptions(t *testing.T, pairs ...uint64) []ProbeOption {
	t.Helper()
	return []ProbeOption{
		WithRegistry(fixtureRegistry(probeOK1, probeTrap1, probeExit)),
		WithAuxvPath(writeAuxv(t, pairs...)),
	}
}

func TestCheckWith(t *testing.T) {
	fp := mustCapability(t, "fp")
	sve := mustCapability(t, "sve")
	sve2 := mustCapability(t, "sve2")

	tests := []struct {
		name        string
		auxv        []uint64
		reqs        []Requirement
		wantFeature string
		wantReason  string
	}{
		{
			name: "nothing required",
			auxv: []uint64{atHWCAP, 0},
		},
		{
			name: "capability present",
			auxv: []uint64{atHWCAP, 0x1},
			reqs: []Requirement{fp},
		},
		{
			name:        "capability bit clear",
			auxv:        []uint64{atHWCAP, 0x1},
			reqs:        []Requirement{fp, sve},
			wantFeature: "HWCAP_SVE",
			wantReason:  "HWCAP_SVE not set; the CPU lacks the feature or the kernel does not enable it",
		},
		{
			name:        "category not reported",
			auxv:        []uint64{atHWCAP, 0x1},
			reqs:        []Requirement{sve2},
			wantFeature: "HWCAP2_SVE2",
			wantReason:  "kernel does not report AT_HWCAP2; kernel too old or capability word unavailable",
		},
		{
			name: "readable register",
			auxv: []uint64{atHWCAP, 0x1},
			reqs: []Requirement{RequireRegister("fixture_ok_1")},
		},
		{
			name:        "trapping register",
			auxv:        []uint64{atHWCAP, 0x1},
			reqs:        []Requirement{RequirementGroup{fp, RequireRegister("fixture_ok_1")}, RequireRegister("fixture_trap_1")},
			wantFeature: "fixture_trap_1",
			wantReason:  "register not implemented or not accessible from EL0 on this CPU",
		},
		{
			name:        "register missing from registry",
			auxv:        []uint64{atHWCAP, 0x1},
			reqs:        []Requirement{RequireRegister("fixture_missing")},
			wantFeature: "fixture_missing",
			wantReason:  "unknown register",
		},
		{
			name:        "capabilities come first",
			auxv:        []uint64{atHWCAP, 0x1},
			reqs:        []Requirement{RequireRegister("fixture_trap_1"), sve},
			wantFeature: "HWCAP_SVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWith(checkOptions(t, tt.auxv...), tt.reqs...)
			if tt.wantFeature == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FeatureError
			require.True(t, errors.As(err, &fe), "error = %v", err)
			assert.Equal(t, tt.wantFeature, fe.Feature)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, fe.Reason)
			}
		})
	}
}

func TestCheckWith_WorkerFailureIsWrapped(t *testing.T) {
	err := CheckWith(checkOptions(t, atHWCAP, 0x1), RequireRegister("fixture_exit"))

	var fe *FeatureError
	require.True(t, errors.As(err, &fe), "error = %v", err)
	assert.Equal(t, "fixture_exit", fe.Feature)
	require.Error(t, fe.Err)
	assert.Contains(t, fe.Error(), "exit status 7")
}

func TestCheckWith_ProbeError(t *testing.T) {
	opts := append(checkOptions(t, atHWCAP, 0x1), WithWorkerPath("/nonexistent/arm64id"))
	err := CheckWith(opts, RequireRegister("fixture_ok_1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkerSetup)

	var fe *FeatureError
	assert.False(t, errors.As(err, &fe))
}

func TestReport_Diagnose(t *testing.T) {
	report := &Report{
		Registers: []Reading{
			{Name: "S3_0_C0_C4_4", Alias: "id_aa64zfr0_el1"},
			{Name: "S3_3_C14_C0_0", Alias: "cntfrq_el0"},
			{Name: "S3_0_C0_C0_0", Alias: "midr_el1", ProbeResult: ProbeResult{Error: errors.New("worker exit status 1: boom")}},
		},
		Capabilities: []CapabilitySet{Decode(CategoryHWCAP, 0x1)},
	}

	tests := []struct {
		name string
		req  Requirement
		want string
	}{
		{
			name: "ID register without CPUID emulation",
			req:  RequireRegister("id_aa64zfr0_el1"),
			want: "ID register access is not emulated for EL0 (HWCAP_CPUID not set)",
		},
		{
			name: "non-ID register",
			req:  RequireRegister("cntfrq_el0"),
			want: "register not implemented or not accessible from EL0 on this CPU",
		},
		{
			name: "probe error",
			req:  RequireRegister("midr_el1"),
			want: "worker exit status 1: boom",
		},
		{
			name: "register not probed",
			req:  RequireRegister("S3_0_C0_C7_7"),
			want: "unknown register",
		},
		{
			name: "capability clear",
			req:  mustCapability(t, "atomics"),
			want: "HWCAP_ATOMICS not set; the CPU lacks the feature or the kernel does not enable it",
		},
		{
			name: "category missing",
			req:  mustCapability(t, "hwcap2_bti"),
			want: "kernel does not report AT_HWCAP2; kernel too old or capability word unavailable",
		},
		{
			name: "group",
			req:  RequirementGroup{},
			want: "not supported",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.Diagnose(tt.req))
		})
	}

	t.Run("CPUID set", func(t *testing.T) {
		withCPUID := *report
		withCPUID.Capabilities = []CapabilitySet{Decode(CategoryHWCAP, hwcapCPUID)}
		assert.Equal(t,
			"register not implemented or not accessible from EL0 on this CPU",
			withCPUID.Diagnose(RequireRegister("id_aa64zfr0_el1")))
	})
}
