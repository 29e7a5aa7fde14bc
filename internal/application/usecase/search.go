package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decompõe (NFD), remove as marcas de combinação e recompõe,
// para que "Caneca Térmica" e "termica" casem entre si.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normaliza s para comparação: minúsculas e sem acentos.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matches informa se algum dos campos contém query (case e acento
// insensível). Query vazia casa com tudo.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := fold(query)
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}
