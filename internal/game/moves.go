package game

import (
	"iter"
	"slices"
)

// Moves is the ordered ledger of accepted words. The prefix tree always
// reflects exactly the recorded moves; Insert is the only mutation and it
// returns a new ledger.
type Moves struct {
	moves []Move
	tree  *PrefixTree
	exact bool
}

// NewMoves returns an empty ledger. With exact set, Contains matches whole
// words only instead of any prefix of a recorded word.
func NewMoves(exact bool) Moves {
	return Moves{tree: NewPrefixTree(), exact: exact}
}

// Insert appends m and records its word in the tree.
func (ms Moves) Insert(m Move) Moves {
	moves := make([]Move, len(ms.moves), len(ms.moves)+1)
	copy(moves, ms.moves)
	return Moves{
		moves: append(moves, m),
		tree:  ms.tree.Insert(m.Word),
		exact: ms.exact,
	}
}

// Contains reports whether word counts as already found.
func (ms Moves) Contains(word string) bool {
	if ms.tree == nil {
		return word == ""
	}
	if ms.exact {
		return ms.tree.ContainsWord(word)
	}
	return ms.tree.Contains(word)
}

// All yields the moves in insertion order.
func (ms Moves) All() iter.Seq[Move] {
	return slices.Values(ms.moves)
}

// Slice returns a copy of the moves in insertion order.
func (ms Moves) Slice() []Move { return slices.Clone(ms.moves) }

// Len is the number of moves.
func (ms Moves) Len() int { return len(ms.moves) }

// Exact reports whether the ledger uses whole-word containment.
func (ms Moves) Exact() bool { return ms.exact }
