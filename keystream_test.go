package pontifex

import "testing"

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestKeystreamFreshDeckVectors is the first published vector from
// Schneier's Solitaire test suite, keystream output in raw 1..52 form.
func TestKeystreamFreshDeckVectors(t *testing.T) {
	want := []int{4, 49, 10, 24, 8, 51, 44, 6}
	got := NewKeystream(NewDeck()).Take(len(want))
	if !intsEqual(got, want) {
		t.Fatalf("Take(8) = %v, want %v", got, want)
	}
}

// TestKeystreamNinthValueDiscrepancy documents a known discrepancy in
// Schneier's own published output: a common textbook printing of the
// ninth raw keystream value from a fresh deck gives 33, but a careful
// implementation of the stated algorithm produces 4. This implementation
// matches the latter.
func TestKeystreamNinthValueDiscrepancy(t *testing.T) {
	const (
		textbookPrinting = 33
		corrected        = 4
	)
	got := NewKeystream(NewDeck()).Take(9)[8]
	if got == textbookPrinting {
		t.Fatalf("ninth raw value matches the textbook misprint (%d); expected the corrected value %d", textbookPrinting, corrected)
	}
	if got != corrected {
		t.Fatalf("ninth raw value = %d, want corrected value %d", got, corrected)
	}
}

// TestKeystreamFooPassphraseVectors is the second published vector,
// keyed with the passphrase "foo".
func TestKeystreamFooPassphraseVectors(t *testing.T) {
	want := []int{8, 19, 7, 25, 20, 9, 8, 22, 32, 43, 5, 26, 17, 38, 48}
	got := NewKeystream(NewDeckFromPassphrase("foo")).Take(len(want))
	if !intsEqual(got, want) {
		t.Fatalf("Take(15) = %v, want %v", got, want)
	}
}
