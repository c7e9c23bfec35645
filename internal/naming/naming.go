package naming

import (
	"strings"

	"bartrender/pkg/models"
)

// Marketing qualifiers stripped when they appear as the leading token of
// a display name. "Classic Margarita" and "Margarita" must share one key.
var leadingQualifiers = map[string]struct{}{
	"classic":   {},
	"the":       {},
	"authentic": {},
	"original":  {},
	"best":      {},
	"fancy":     {},
	"pro":       {},
	"signature": {},
	"ultimate":  {},
}

// Normalize derives the canonical storage key from a display name:
// lower-cased, one leading qualifier dropped, whitespace runs collapsed
// to '_', everything outside [a-z0-9_] removed. Idempotent; empty or
// symbol-only input yields "" and callers treat that as a cache miss.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// collapse whitespace to single underscores first so the qualifier
	// check sees clean token boundaries
	var b strings.Builder
	b.Grow(len(s))
	prevSep := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '_':
			if !prevSep && b.Len() > 0 {
				b.WriteByte('_')
				prevSep = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevSep = false
		default:
			// punctuation and symbols vanish entirely
		}
	}
	s = strings.TrimSuffix(b.String(), "_")

	// Exactly one leading qualifier is stripped, matching the key rule
	// shipped clients compute. Stacked qualifiers ("The Original Sin")
	// therefore keep the second one, and renormalizing an already
	// normalized key can strip again ("original_sin" -> "sin") — keys
	// must always be derived from display names, never from keys.
	if first, rest, ok := strings.Cut(s, "_"); ok {
		if _, drop := leadingQualifiers[first]; drop {
			s = rest
		}
	}
	return s
}

// Strip is the harsher normalization used for premium classification:
// [a-z0-9] only, no separators, no qualifier handling. "Cupid's Arrow!"
// becomes "cupidsarrow".
func Strip(name string) string {
	s := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VariantKey appends the mode's variant suffix so virgin and shot
// renditions of the same base name occupy independent documents.
func VariantKey(name string, mode models.Mode) string {
	key := Normalize(name)
	if key == "" {
		return ""
	}
	return key + mode.VariantSuffix()
}

// ImageKey normalizes each '/'-delimited segment of an image cache path
// independently, so "cocktails/Mai Tai!/cover" and "cocktails/mai_tai/cover"
// converge on one cache line.
func ImageKey(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = Normalize(p)
	}
	return strings.Join(parts, "/")
}
