package pontifex

import "strings"

// GroupSize is the number of letters per display group in formatted
// output.
const GroupSize = 5

// PadValue is the numeric encoding (1..26) of the pad letter used to bring
// plaintext up to a multiple of GroupSize: 'X' encodes to 24.
const PadValue = 'X' - 'A' + 1

// encodeLetters filters s down to its ASCII letters, folds case to upper,
// and maps A->1 .. Z->26. All other characters (digits, whitespace,
// punctuation, non-ASCII) are silently discarded.
func encodeLetters(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, int(c-'a')+1)
		case c >= 'A' && c <= 'Z':
			out = append(out, int(c-'A')+1)
		}
	}
	return out
}

// padValues appends copies of PadValue until the length of values is a
// multiple of GroupSize. An empty slice is returned unchanged (no padding
// is applied to empty input).
func padValues(values []int) []int {
	if len(values) == 0 {
		return values
	}
	for len(values)%GroupSize != 0 {
		values = append(values, PadValue)
	}
	return values
}

// decodeLetters maps a slice of 1..26 values back to an uppercase letter
// string.
func decodeLetters(values []int) string {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte('A' + mod26(v-1))
	}
	return string(b)
}

// group inserts a single space between every GroupSize letters of s, with
// no trailing separator.
func group(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += GroupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + GroupSize
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// mod26 returns a mod 26 with a result always in [0, 26), regardless of
// the sign of a (Go's % operator preserves the dividend's sign).
func mod26(a int) int {
	return ((a % 26) + 26) % 26
}

// combine zips padded plaintext/ciphertext values with keystream values
// under the given operation (encryption or decryption, each already
// folding in the -1/+1 bias of the 1-based alphabet), returning the
// formatted, grouped, uppercase result.
func combine(deck *Deck, data []int, op func(value, key int) int) string {
	ks := NewKeystream(deck)
	out := make([]int, len(data))
	for i, v := range data {
		k := ks.NextLetter()
		out[i] = mod26(op(v, k)) + 1
	}
	return group(decodeLetters(out))
}

// Encrypt encrypts message with the keystream produced by deck:
// cipher_i = ((plain_i + key_i - 1) mod 26) + 1. Non-letters in message
// are discarded and the letters-only plaintext is padded with 'X' to a
// multiple of GroupSize before encryption.
//
// deck is mutated (and effectively consumed): prepare the whole message
// before calling, since Solitaire is not recommended for long messages.
func Encrypt(deck *Deck, message string) string {
	data := padValues(encodeLetters(message))
	return combine(deck, data, func(p, k int) int { return p + k - 1 })
}

// Decrypt decrypts ciphertext with the keystream produced by deck. Unlike
// Encrypt, the ciphertext is not padded: it is expected to already be a
// multiple of GroupSize (the output of a prior Encrypt call).
//
// deck is mutated (and effectively consumed); see Encrypt.
func Decrypt(deck *Deck, ciphertext string) string {
	data := encodeLetters(ciphertext)
	return combine(deck, data, func(c, k int) int { return c - k - 1 })
}
