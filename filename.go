package cardxlsx

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrOutputExists is returned when an existing output file cannot be removed.
var ErrOutputExists = errors.New("output file already exists")

const (
	maxFileNameStem = 250
	fallbackStem    = "card"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[-\s]+`)
)

// OutputFileName derives a portable .xlsx file name from a card name:
// accents are decomposed and dropped, punctuation removed, runs of spaces
// and dashes collapsed to one dash, and the stem cut to 250 bytes.
func OutputFileName(cardName string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(cardName) {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	stem := nonWordRe.ReplaceAllString(b.String(), "")
	stem = separatorRe.ReplaceAllString(stem, "-")
	stem = strings.Trim(stem, "-_")
	if len(stem) > maxFileNameStem {
		stem = stem[:maxFileNameStem]
	}
	if stem == "" {
		stem = fallbackStem
	}
	return stem + ".xlsx"
}

// PrepareOutput removes a previous file at path so it can be replaced.
func PrepareOutput(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputExists, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrOutputExists, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputExists, path, err)
	}
	return nil
}
