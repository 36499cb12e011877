package arm64id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCapability(t *testing.T, name string) Capability {
	t.Helper()
	c, ok := LookupCapability(name)
	require.True(t, ok, "unknown capability %s", name)
	return c
}

func TestNormalizeRequirements(t *testing.T) {
	sve := mustCapability(t, "sve")
	aes := mustCapability(t, "aes")

	rs := normalizeRequirements([]Requirement{
		sve,
		RequireRegister("midr_el1"),
		RequirementGroup{aes, sve, nil, RequireRegister("S3_0_C0_C0_0")},
		RequireRegister("id_aa64zfr0_el1"),
	})

	assert.Equal(t, []Capability{sve, aes}, rs.capabilities)
	assert.Equal(t, []string{"S3_0_C0_C0_0", "S3_0_C0_C4_4"}, rs.registers)
}

func TestRequireRegister(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"midr_el1", "S3_0_C0_C0_0"},
		{"MIDR_EL1", "S3_0_C0_C0_0"},
		{"s3_0_c0_c0_0", "S3_0_C0_C0_0"},
		{"S3_3_C14_C0_0", "S3_3_C14_C0_0"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireRegister(tt.in).Name)
		})
	}
}

func TestParseRequirement(t *testing.T) {
	t.Run("capability", func(t *testing.T) {
		req, err := ParseRequirement("sve2")
		require.NoError(t, err)
		c, ok := req.(Capability)
		require.True(t, ok)
		assert.Equal(t, CategoryHWCAP2, c.Category)
	})

	t.Run("register alias", func(t *testing.T) {
		req, err := ParseRequirement("cntvct_el0")
		require.NoError(t, err)
		assert.Equal(t, RegisterRequirement{Name: "S3_3_C14_C0_2"}, req)
	})

	t.Run("generic register outside the alias table", func(t *testing.T) {
		req, err := ParseRequirement("S3_0_C0_C0_1")
		require.NoError(t, err)
		assert.Equal(t, RegisterRequirement{Name: "S3_0_C0_C0_1"}, req)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseRequirement("warp_drive")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"warp_drive"`)
	})
}

func TestRegisterRequirement_String(t *testing.T) {
	assert.Equal(t, "midr_el1", RegisterRequirement{Name: "S3_0_C0_C0_0"}.String())
	assert.Equal(t, "S3_0_C0_C0_1", RegisterRequirement{Name: "S3_0_C0_C0_1"}.String())
}
