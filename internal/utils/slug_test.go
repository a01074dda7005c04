package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Brillo Labial", "brillo-labial"},
		{"diacritics and symbols removed", "Sérum Facial #1!", "srum-facial-1"},
		{"collapses whitespace", "  Multi   Space  ", "multi-space"},
		{"underscores become hyphens", "base_de_maquillaje", "base-de-maquillaje"},
		{"mixed separators collapse", "gel - _limpiador", "gel-limpiador"},
		{"edge hyphens trimmed", "--Labios--", "labios"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Brillo Labial", "Sérum Facial #1!", "  Multi   Space  ", "cuidado-corporal"}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify debería ser idempotente para %q", in)
	}
}
