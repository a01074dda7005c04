package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
	slugEdgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify normaliza un texto a un identificador apto para URL:
// minúsculas, sin caracteres especiales, separadores colapsados a guiones.
// Es idempotente: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return slugEdgeHyphens.ReplaceAllString(s, "")
}
