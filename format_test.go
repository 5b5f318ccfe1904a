package pontifex

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDeckRoundTrip(t *testing.T) {
	for _, ascii := range []bool{true, false} {
		d := NewDeck()
		s, err := d.Format(ascii)
		if err != nil {
			t.Fatalf("Format(ascii=%v): %v", ascii, err)
		}
		got, err := ParseDeck(s)
		if err != nil {
			t.Fatalf("ParseDeck(%q): %v", s, err)
		}
		if *got != *d {
			t.Fatalf("round trip (ascii=%v) mismatch: got %v, want %v", ascii, got, d)
		}
	}
}

func TestParseDeckCaseAndWhitespaceTolerant(t *testing.T) {
	d := NewDeck()
	canonical, _ := d.Format(true)

	messy := "  " + strings.ToLower(canonical) + "\n,,,\t"
	got, err := ParseDeck(messy)
	if err != nil {
		t.Fatalf("ParseDeck tolerant input: %v", err)
	}
	if *got != *d {
		t.Fatalf("tolerant parse mismatch")
	}
}

func TestParseDeckWrongCount(t *testing.T) {
	_, err := ParseDeck("AC 2C 3C")
	if !errors.Is(err, ErrDeckWrongCount) {
		t.Fatalf("err = %v, want ErrDeckWrongCount", err)
	}
}

func TestParseDeckDuplicate(t *testing.T) {
	d := NewDeck()
	s, _ := d.Format(true)
	// Replace the last card (BJ) with a duplicate of the first (1C).
	tokens := tokenizeCards(s)
	tokens[len(tokens)-1] = tokens[0]
	dup := ""
	for i, tok := range tokens {
		if i > 0 {
			dup += " "
		}
		dup += tok
	}
	_, err := ParseDeck(dup)
	if !errors.Is(err, ErrDeckNotUnique) {
		t.Fatalf("err = %v, want ErrDeckNotUnique", err)
	}
}

func TestParseCardTokenErrors(t *testing.T) {
	cases := []struct {
		token string
		want  error
	}{
		{"", ErrCardLength},
		{"1Z", ErrUnknownSuitGlyph},
		{"100C", ErrCardLength},
		{"15C", ErrRankParse},
		{"CJ", ErrUnknownJokerLabel},
	}
	for _, c := range cases {
		_, err := parseCardToken(c.token)
		if !errors.Is(err, c.want) {
			t.Errorf("parseCardToken(%q) = %v, want %v", c.token, err, c.want)
		}
	}
}

func TestCardFormatRoundTrip(t *testing.T) {
	for v := 1; v <= 54; v++ {
		c, err := cardFromValue(v)
		if err != nil {
			t.Fatalf("cardFromValue(%d): %v", v, err)
		}
		if c.Value() != v {
			t.Fatalf("cardFromValue(%d).Value() = %d", v, c.Value())
		}
		tok, err := c.Format(true)
		if err != nil {
			t.Fatalf("Format(%d): %v", v, err)
		}
		back, err := parseCardToken(tok)
		if err != nil {
			t.Fatalf("parseCardToken(%q): %v", tok, err)
		}
		if back.Value() != v {
			t.Fatalf("round trip of %d through %q produced %d", v, tok, back.Value())
		}
	}
}

func TestCardOutOfRange(t *testing.T) {
	if _, err := cardFromValue(0); !errors.Is(err, ErrCardOutOfRange) {
		t.Fatalf("cardFromValue(0) err = %v, want ErrCardOutOfRange", err)
	}
	if _, err := cardFromValue(55); !errors.Is(err, ErrCardOutOfRange) {
		t.Fatalf("cardFromValue(55) err = %v, want ErrCardOutOfRange", err)
	}
}
