package pontifex

import "errors"

// Sentinel errors returned by deck parsing, validation, and the CLI's
// key-source resolution. Callers should compare against these with
// errors.Is; the errors returned by this package wrap a sentinel with
// additional context via fmt.Errorf's %w verb.
var (
	// ErrCardOutOfRange is returned when a numeric card value is 0 or > 54.
	ErrCardOutOfRange = errors.New("card value out of range")

	// ErrUnknownSuitGlyph is returned when a suit character is not one of
	// the accepted ASCII or Unicode suit glyphs.
	ErrUnknownSuitGlyph = errors.New("unknown suit glyph")

	// ErrUnknownJokerLabel is returned when a joker's rank letter is
	// neither "A" nor "B".
	ErrUnknownJokerLabel = errors.New("unknown joker label")

	// ErrCardLength is returned when a card token is empty or too long to
	// be a rank+suit pair.
	ErrCardLength = errors.New("card token has invalid length")

	// ErrRankParse is returned when the rank portion of a card token is
	// not a recognized letter or an integer in 1..13.
	ErrRankParse = errors.New("unparseable card rank")

	// ErrDeckWrongCount is returned when a parsed deck does not contain
	// exactly 54 cards.
	ErrDeckWrongCount = errors.New("deck does not have exactly 54 cards")

	// ErrDeckNotUnique is returned when a parsed deck contains the same
	// card value more than once.
	ErrDeckNotUnique = errors.New("deck contains duplicate cards")

	// ErrDeckOutOfBounds is returned when a deck's 54 values, though
	// unique, are not a permutation of 1..54.
	ErrDeckOutOfBounds = errors.New("deck is not a permutation of 1..54")

	// ErrMissingKeySource is returned when encrypt/decrypt is invoked
	// without either a starting deck or a passphrase.
	ErrMissingKeySource = errors.New("either a deck or a passphrase is required")
)
