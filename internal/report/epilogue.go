// The closing note. Lightly obfuscated so it does not pop out when
// skimming the source; it only decodes at print time, and only when the
// run earned it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/talgya/greenhouse/internal/school"
)

var encodedWords = []string{
	"siht", "si", "a", "lanoitcif", "loohcs", "noitalumis.",
	"ti", "si", "ton", "tuoba", "eno", "oreh", "rehcaet.",
	"fi", "uoy", "era", "gninnur", "siht", "edoc", "dna", "gnidaer", "eht", "tuptuo,",
	"uoy", "era", "ydaerla", "gnikniht", "tuoba", "smetsys", "dna", "eht", "erutuf.",
	"taht", "teiuq", "tibah", "si", "eno", "llams", "noisrev", "fo", "'erutuf", "epoh'.",
}

// Epilogue writes a short message when at least one student ended the run
// flagged as future hope. Otherwise it writes nothing.
func Epilogue(w io.Writer, e *school.Ecosystem) {
	hopeful := false
	for _, a := range e.Actors {
		if a.IsStudent() && a.IsFutureHope {
			hopeful = true
			break
		}
	}
	if !hopeful {
		return
	}

	words := make([]string, len(encodedWords))
	for i, word := range encodedWords {
		words[i] = reverse(word)
	}
	fmt.Fprintln(w, "\n=== Hidden message ===")
	fmt.Fprintln(w, strings.Join(words, " "))
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
