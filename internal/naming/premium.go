package naming

import "strings"

// Universally known drinks that always stay on the free tier. Checked by
// substring containment against the stripped name so decorated names
// ("Classic Margarita Deluxe") still resolve to free.
var freeAllowList = []string{
	"mojito", "gintonic", "cubalibre", "margarita", "spritz", "tipunch",
	"caipirinha", "daiquiri", "moscowmule", "bloodymary", "tequilasunrise",
	"pinacolada", "sexonthebeach", "cosmopolitan", "whiskeusour", "mimosa",
	"negoni", "american", "bluehawaii", "maitai",
}

// IsPremium deterministically classifies a drink name. No stored flag:
// every client recomputes the same answer for the same name, so the
// classification can never drift from the business rule across
// regeneration.
//
// The hash must stay bit-for-bit compatible with shipped clients
// (h = h*31 + c with 32-bit wraparound, |h| % 3 == 0 means premium);
// changing it would silently reclassify the existing catalog.
func IsPremium(name string) bool {
	stripped := Strip(name)

	for _, free := range freeAllowList {
		if strings.Contains(stripped, free) {
			return false
		}
	}

	var h int32
	for _, r := range stripped {
		h = (h << 5) - h + int32(r)
	}
	if h == -2147483648 {
		// MinInt32 negates to itself; its true magnitude mod 3 is 2
		return false
	}
	if h < 0 {
		h = -h
	}
	return h%3 == 0
}
