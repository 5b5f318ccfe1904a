package pontifex

// Keystream is a stateful, single-owner iterator of keystream values. It
// owns its Deck exclusively for the duration of iteration: no external
// mutation of the Deck is permitted while a Keystream wraps it.
//
// Keystream has no natural terminus. Callers must take a finite prefix
// (Next, NextLetter, or Take); the implementation never pre-materializes
// more of the stream than requested.
type Keystream struct {
	deck *Deck
}

// NewKeystream returns a Keystream that owns deck.
func NewKeystream(deck *Deck) *Keystream {
	return &Keystream{deck: deck}
}

// Next advances the deck by one or more steps, discarding any step whose
// output-tap lands on a joker, and returns the next raw keystream value in
// 1..52.
func (k *Keystream) Next() int {
	for {
		v, ok := k.deck.step()
		if ok {
			return v
		}
	}
}

// NextLetter reduces Next to the 1..26 range used by the text pipeline,
// via ((v-1) mod 26) + 1.
func (k *Keystream) NextLetter() int {
	return mod26(k.Next()-1) + 1
}

// Take returns the next n raw keystream values (1..52). It is provided for
// tests and CLI introspection against the published test vectors.
func (k *Keystream) Take(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = k.Next()
	}
	return out
}
