package arm64id

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leodido/arm64id/internal/sysreg"
)

func constant(v uint64) func() uint64 {
	return func() uint64 { return v }
}

func registryNames(r *Registry) []string {
	var names []string
	for p := range r.All() {
		names = append(names, p.Name())
	}
	return names
}

func TestRegistry_Register(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		r := NewRegistry()
		names := []string{"S3_3_C14_C0_0", "S3_0_C0_C0_0", "S3_0_C0_C4_0"}
		for i, n := range names {
			require.NoError(t, r.Register(NewEntry(n, constant(uint64(i)))))
		}
		assert.Equal(t, names, registryNames(r))
	})

	t.Run("duplicate keeps first registration", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(NewEntry("S3_0_C0_C0_0", constant(1)))

		err := r.Register(NewEntry("S3_0_C0_C0_0", constant(2)))
		require.ErrorIs(t, err, ErrDuplicateProbe)
		assert.Equal(t, 1, r.Len())

		p, ok := r.Lookup("S3_0_C0_C0_0")
		require.True(t, ok)
		assert.Equal(t, uint64(1), p.read())
	})

	t.Run("frozen registry rejects entries", func(t *testing.T) {
		r := NewRegistry()
		r.Freeze()
		assert.True(t, r.Frozen())
		assert.ErrorIs(t, r.Register(NewEntry("S3_0_C0_C0_0", constant(1))), ErrRegistryFrozen)
	})

	t.Run("invalid entries", func(t *testing.T) {
		r := NewRegistry()
		for _, p := range []Entry{
			NewEntry("", constant(0)),
			NewEntry("S3_0_C0_C0_0", nil),
			NewEntry("a,b", constant(0)),
			NewEntry("a b", constant(0)),
		} {
			assert.Error(t, r.Register(p), "Register(%q)", p.Name())
		}
		assert.Zero(t, r.Len())
	})
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(NewEntry("x", constant(0)), NewEntry("x", constant(0)))
	})
}

func TestRegistry_AllIsRestartable(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		NewEntry("a", constant(0)),
		NewEntry("b", constant(0)),
		NewEntry("c", constant(0)),
	)

	want := []string{"a", "b", "c"}
	assert.Equal(t, want, registryNames(r))
	assert.Equal(t, want, registryNames(r))

	// Stopping early must not disturb later iterations.
	for p := range r.All() {
		if p.Name() == "a" {
			break
		}
	}
	assert.Equal(t, want, registryNames(r))
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, registryNames(r))
	_, ok := r.Lookup("S3_0_C0_C0_0")
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.True(t, r.Frozen())
	assert.Same(t, r, DefaultRegistry(), "built once")

	if runtime.GOARCH != "arm64" {
		assert.Zero(t, r.Len())
		return
	}

	all := sysreg.All()
	want := make([]string, 0, len(all))
	for _, reg := range all {
		want = append(want, reg.String())
	}
	assert.Equal(t, want, registryNames(r))
}
