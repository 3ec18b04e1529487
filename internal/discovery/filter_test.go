package discovery

import (
	"testing"

	"gtp/internal/domain"
)

func TestFilter_Matches(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name    string
		pattern string
		test    string
		want    bool
	}{
		{"exact wildcard match", "test_add*", "test_addition", true},
		{"wildcard no match", "test_add*", "test_remainder", false},
		{"surrounding wildcards", "*remainder*", "test_remainder", true},
		{"question mark", "test_?ul", "test_mul", true},
		{"plain substring", "division", "test_division", true},
		{"plain substring no match", "division", "test_addition", false},
		{"multiple parts", "*test*add*", "test_addition", true},
		{"multiple parts missing one", "*test*mul*", "test_addition", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Matches(tt.test, tt.pattern); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.test, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	filter := NewFilter()
	descs := []domain.TestDescriptor{
		{Name: "test_addition"},
		{Name: "test_multiplication"},
		{Name: "test_remainder"},
	}

	t.Run("empty pattern keeps everything", func(t *testing.T) {
		got := filter.Apply(descs, "")
		if len(got) != 3 {
			t.Errorf("expected 3 descriptors, got %d", len(got))
		}
	})

	t.Run("filters and preserves order", func(t *testing.T) {
		got := filter.Apply(descs, "*m*")
		if len(got) != 2 {
			t.Fatalf("expected 2 descriptors, got %d", len(got))
		}
		if got[0].Name != "test_multiplication" || got[1].Name != "test_remainder" {
			t.Errorf("unexpected order: %s, %s", got[0].Name, got[1].Name)
		}
	})
}
