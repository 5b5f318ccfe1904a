package pontifex

import (
	"fmt"
	"strconv"
	"strings"
)

// suitGlyphRunes are the Unicode suit symbols recognized by the tokenizer
// in addition to ASCII letters and digits.
var suitGlyphRunes = map[rune]bool{
	'♧': true,
	'♢': true,
	'♡': true,
	'♤': true,
}

// tokenizeCards splits s into card tokens, treating any run of letters,
// digits, or suit glyphs as a token and anything else (whitespace, commas,
// newlines, ...) as a separator. This is deliberately permissive: any
// whitespace or punctuation between cards is tolerated.
func tokenizeCards(s string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', suitGlyphRunes[r]:
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// parseCardToken parses a single card token such as "AC", "10♡", "KS", or
// "BJ" into a Card record.
func parseCardToken(token string) (Card, error) {
	runes := []rune(token)
	if len(runes) == 0 {
		return Card{}, fmt.Errorf("empty card token: %w", ErrCardLength)
	}

	last := runes[len(runes)-1]
	rankPart := string(runes[:len(runes)-1])

	var suit Suit
	switch last {
	case 'C', 'c', '♧':
		suit = Club
	case 'D', 'd', '♢':
		suit = Diamond
	case 'H', 'h', '♡':
		suit = Heart
	case 'S', 's', '♤':
		suit = Spade
	case 'J', 'j':
		suit = Joker
	default:
		return Card{}, fmt.Errorf("token %q: %w", token, ErrUnknownSuitGlyph)
	}

	if len(rankPart) == 0 || len(rankPart) > 2 {
		return Card{}, fmt.Errorf("token %q: %w", token, ErrCardLength)
	}

	if suit == Joker {
		switch strings.ToUpper(rankPart) {
		case "A":
			return Card{Suit: Joker, Rank: 0}, nil
		case "B":
			return Card{Suit: Joker, Rank: 1}, nil
		default:
			return Card{}, fmt.Errorf("token %q: %w", token, ErrUnknownJokerLabel)
		}
	}

	switch strings.ToUpper(rankPart) {
	case "A":
		return Card{Suit: suit, Rank: 1}, nil
	case "J":
		return Card{Suit: suit, Rank: 11}, nil
	case "Q":
		return Card{Suit: suit, Rank: 12}, nil
	case "K":
		return Card{Suit: suit, Rank: 13}, nil
	}

	n, err := strconv.Atoi(rankPart)
	if err != nil || n < 1 || n > 13 {
		return Card{}, fmt.Errorf("token %q: %w", token, ErrRankParse)
	}
	return Card{Suit: suit, Rank: n}, nil
}

// ParseDeck parses a Deck from its canonical textual form: 54 card tokens,
// in top-to-bottom order, separated by arbitrary whitespace/punctuation.
// It accepts both ASCII and Unicode suit glyphs, case-insensitively, and
// requires the result to be a valid permutation of 1..54.
func ParseDeck(s string) (*Deck, error) {
	tokens := tokenizeCards(s)
	if len(tokens) != deckSize {
		return nil, fmt.Errorf("parsed %d card tokens, want %d: %w", len(tokens), deckSize, ErrDeckWrongCount)
	}

	var d Deck
	for i, tok := range tokens {
		c, err := parseCardToken(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		d[i] = c.Value()
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// String renders the deck in canonical Unicode form: 54 cards separated by
// single spaces, top of deck first.
func (d *Deck) String() string {
	s, err := d.Format(false)
	if err != nil {
		return "<invalid deck>"
	}
	return s
}

// ASCIIString renders the deck using ASCII suit glyphs (C D H S J).
func (d *Deck) ASCIIString() string {
	s, err := d.Format(true)
	if err != nil {
		return "<invalid deck>"
	}
	return s
}

// Format renders the deck as 54 space-separated card tokens, top of deck
// first.
func (d *Deck) Format(ascii bool) (string, error) {
	tokens := make([]string, deckSize)
	for i, v := range d {
		c, err := cardFromValue(v)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		tok, err := c.Format(ascii)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return strings.Join(tokens, " "), nil
}
