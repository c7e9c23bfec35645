package naming

import "testing"

func TestIsPremiumAllowList(t *testing.T) {
	free := []string{
		"Mojito", "THE MOJITO!", "mo jito", // stripped forms all contain "mojito"
		"Classic Margarita Deluxe", // substring containment, not exact match
		"Virgin Pina Colada",
		"Frozen Daiquiri",
	}
	for _, name := range free {
		if IsPremium(name) {
			t.Errorf("IsPremium(%q) = true, want false (allow-list)", name)
		}
	}
}

func TestIsPremiumDeterministic(t *testing.T) {
	names := []string{"Cupid's Arrow", "Midnight Ember", "Smoky Quartz Fizz", "Velvet Hammer"}
	for _, name := range names {
		first := IsPremium(name)
		for i := 0; i < 3; i++ {
			if IsPremium(name) != first {
				t.Fatalf("IsPremium(%q) unstable", name)
			}
		}
	}
}

func TestIsPremiumPunctuationInvariant(t *testing.T) {
	// the classification is a function of the stripped name, so any
	// casing or punctuation variant must classify identically
	variants := map[string][]string{
		"Cupid's Arrow":  {"cupids arrow", "CUPID'S-ARROW!", "Cupids Arrow"},
		"Midnight Ember": {"midnight ember", "MIDNIGHT_EMBER", "Mid-night Ember"},
	}
	for base, alts := range variants {
		want := IsPremium(base)
		for _, alt := range alts {
			if got := IsPremium(alt); got != want {
				t.Errorf("IsPremium(%q) = %v, want %v (variant of %q)", alt, got, want, base)
			}
		}
	}
}

func TestIsPremiumRoughRatio(t *testing.T) {
	// about one non-allow-listed drink in three should be premium; with
	// a deterministic hash this is a sanity check, not a statistics test
	names := []string{
		"Amber Dusk", "Crimson Veil", "Gilded Thorn", "Harbor Light",
		"Ivy Crown", "Jade Lantern", "Kindled Oak", "Lunar Drift",
		"Nightshade Bloom", "Opal Current", "Quiet Storm", "Rusted Key",
		"Sable Mist", "Thistle Down", "Umber Glow", "Violet Hour",
		"Winter Lace", "Yonder Peak", "Zephyr Trail", "Ashen Rose",
		"Briar Patch Sour", "Cinder Bloom", "Drifting Ember", "Echo Canyon",
	}
	premium := 0
	for _, n := range names {
		if IsPremium(n) {
			premium++
		}
	}
	if premium == 0 || premium == len(names) {
		t.Fatalf("premium split degenerate: %d of %d", premium, len(names))
	}
}
