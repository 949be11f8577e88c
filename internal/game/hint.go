package game

// Hint reveals a target word one letter at a time. The zero value is an
// exhausted hint with nothing revealed.
type Hint struct {
	word     []rune
	revealed int
}

// NewHint starts a hint for word with nothing revealed.
func NewHint(word string) Hint {
	return Hint{word: []rune(word)}
}

// Exhausted reports whether every letter has been revealed.
func (h Hint) Exhausted() bool { return h.revealed >= len(h.word) }

// Next reveals one more letter.
func (h Hint) Next() Hint {
	return Hint{word: h.word, revealed: h.revealed + 1}
}

// Revealed is the number of letters shown, which is also the cost of the
// most recent reveal.
func (h Hint) Revealed() int { return h.revealed }

// Letters returns the revealed prefix as individual letters.
func (h Hint) Letters() []string {
	out := make([]string, 0, h.revealed)
	for _, r := range h.word[:min(h.revealed, len(h.word))] {
		out = append(out, string(r))
	}
	return out
}

// String is the revealed prefix.
func (h Hint) String() string {
	return string(h.word[:min(h.revealed, len(h.word))])
}
