package discovery

import (
	"errors"
	"testing"

	"gtp/internal/registry"
)

func TestPopulate(t *testing.T) {
	t.Run("registers only names matching the prefix", func(t *testing.T) {
		set := NewSet().
			Add("test_addition", func() {}, "").
			Add("helper_setup", func() {}, "").
			Add("test_remainder", func() {}, "")

		reg := registry.New()
		if err := Populate(reg, set, "test_"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		all := reg.All()
		if len(all) != 2 {
			t.Fatalf("expected 2 registered tests, got %d", len(all))
		}
		if all[0].Name != "test_addition" || all[1].Name != "test_remainder" {
			t.Errorf("unexpected registration order: %s, %s", all[0].Name, all[1].Name)
		}
	})

	t.Run("preserves set order", func(t *testing.T) {
		set := NewSet().
			Add("test_c", func() {}, "").
			Add("test_a", func() {}, "").
			Add("test_b", func() {}, "")

		reg := registry.New()
		if err := Populate(reg, set, "test_"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"test_c", "test_a", "test_b"}
		for i, desc := range reg.All() {
			if desc.Name != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], desc.Name)
			}
		}
	})

	t.Run("stops on duplicate name", func(t *testing.T) {
		set := NewSet().
			Add("test_add", func() {}, "").
			Add("test_add", func() {}, "").
			Add("test_mul", func() {}, "")

		reg := registry.New()
		err := Populate(reg, set, "test_")
		var dup *registry.DuplicateNameError
		if !errors.As(err, &dup) {
			t.Fatalf("expected *registry.DuplicateNameError, got %v", err)
		}
		// Nothing after the duplicate may have been registered
		if _, ok := reg.Lookup("test_mul"); ok {
			t.Error("registration should stop at the duplicate")
		}
	})

	t.Run("empty prefix registers everything", func(t *testing.T) {
		set := NewSet().
			Add("check_one", func() {}, "").
			Add("test_two", func() {}, "")

		reg := registry.New()
		if err := Populate(reg, set, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.Len() != 2 {
			t.Errorf("expected 2 registered tests, got %d", reg.Len())
		}
	})
}
