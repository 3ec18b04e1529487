package selection

import (
	"testing"

	"gtp/internal/registry"
)

func newRegistry(t *testing.T, names ...string) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, name := range names {
		if err := reg.Register(name, func() {}, ""); err != nil {
			t.Fatalf("failed to register %s: %v", name, err)
		}
	}
	return reg
}

func TestSelect(t *testing.T) {
	t.Run("no requested names selects all in registry order", func(t *testing.T) {
		reg := newRegistry(t, "test_add", "test_mul", "test_rem")

		result := Select(reg, nil)
		if len(result.Unknown) != 0 {
			t.Errorf("expected no unknown names, got %v", result.Unknown)
		}
		want := []string{"test_add", "test_mul", "test_rem"}
		if len(result.Descriptors) != len(want) {
			t.Fatalf("expected %d descriptors, got %d", len(want), len(result.Descriptors))
		}
		for i, name := range want {
			if result.Descriptors[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, result.Descriptors[i].Name)
			}
		}
	})

	t.Run("requested names preserve request order", func(t *testing.T) {
		reg := newRegistry(t, "test_add", "test_mul", "test_rem")

		result := Select(reg, []string{"test_rem", "test_add"})
		if len(result.Descriptors) != 2 {
			t.Fatalf("expected 2 descriptors, got %d", len(result.Descriptors))
		}
		if result.Descriptors[0].Name != "test_rem" || result.Descriptors[1].Name != "test_add" {
			t.Errorf("unexpected order: %s, %s", result.Descriptors[0].Name, result.Descriptors[1].Name)
		}
	})

	t.Run("unknown names are collected not fatal", func(t *testing.T) {
		reg := newRegistry(t, "test_add", "test_mul")

		result := Select(reg, []string{"test_add", "test_mul", "test_div"})
		if len(result.Descriptors) != 2 {
			t.Fatalf("expected 2 descriptors, got %d", len(result.Descriptors))
		}
		if len(result.Unknown) != 1 || result.Unknown[0] != "test_div" {
			t.Errorf("expected unknown [test_div], got %v", result.Unknown)
		}
	})

	t.Run("duplicate requests execute twice", func(t *testing.T) {
		reg := newRegistry(t, "test_add")

		result := Select(reg, []string{"test_add", "test_add"})
		if len(result.Descriptors) != 2 {
			t.Errorf("expected 2 descriptors for duplicate request, got %d", len(result.Descriptors))
		}
	})

	t.Run("empty registry with requested names", func(t *testing.T) {
		reg := registry.New()

		result := Select(reg, []string{"test_add"})
		if len(result.Descriptors) != 0 {
			t.Errorf("expected no descriptors, got %d", len(result.Descriptors))
		}
		if len(result.Unknown) != 1 {
			t.Errorf("expected 1 unknown name, got %d", len(result.Unknown))
		}
	})
}
