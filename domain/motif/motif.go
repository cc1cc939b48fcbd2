// Package motif canonicalizes the free-text category labels found in the
// Suivi Global tracker. Every category comparison in the code base goes
// through Normalize; call sites never re-implement substring checks.
package motif

import "strings"

// Tag is a canonical category label.
type Tag string

const (
	TagOK           Tag = "OK"
	TagNOK          Tag = "NOK"
	TagUPROK        Tag = "UPR_OK"
	TagUPRNOK       Tag = "UPR_NOK"
	TagUnrecognized Tag = "UNRECOGNIZED"
)

// Tags returns the canonical set, excluding the unrecognized sentinel.
func Tags() []Tag {
	return []Tag{TagOK, TagNOK, TagUPROK, TagUPRNOK}
}

// The synonym table is a fixed, closed set. Labels that match nothing map to
// TagUnrecognized and are surfaced as advisory findings, never guessed at.
var synonyms = map[string]Tag{
	"OK":      TagOK,
	"NOK":     TagNOK,
	"KO":      TagNOK,
	"UPR_OK":  TagUPROK,
	"UPR_NOK": TagUPRNOK,
	"UPR_KO":  TagUPRNOK,
}

// Normalize maps a raw cell label to its canonical tag. Matching is
// case-insensitive and treats space, hyphen and underscore between compound
// tokens as equivalent, so "UPR NOK", "UPR-NOK" and "upr_nok" all collapse
// to TagUPRNOK. Normalizing an already-canonical tag returns it unchanged.
// Unknown inputs return TagUnrecognized; Normalize never fails.
func Normalize(raw string) Tag {
	key := fold(raw)
	if tag, ok := synonyms[key]; ok {
		return tag
	}
	return TagUnrecognized
}

// IsRecognized reports whether raw maps to a canonical tag.
func IsRecognized(raw string) bool {
	return Normalize(raw) != TagUnrecognized
}

// fold upper-cases the label and collapses every run of separator
// characters into a single underscore.
func fold(raw string) string {
	up := strings.ToUpper(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(up))
	sep := false
	for _, r := range up {
		switch r {
		case ' ', '-', '_':
			sep = true
		default:
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
