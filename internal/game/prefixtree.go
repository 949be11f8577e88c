package game

// PrefixTree is a persistent trie over found words. Insert never mutates a
// tree; it returns a new root that shares every untouched subtree.
//
// Contains treats any consumed path as present, so a prefix of an inserted
// word is reported as contained. ContainsWord honours terminal markers and
// only matches words that were inserted whole.
type PrefixTree struct {
	children map[rune]*PrefixTree
	level    int
	terminal bool
}

// NewPrefixTree returns an empty tree.
func NewPrefixTree() *PrefixTree {
	return &PrefixTree{}
}

// Insert returns a tree with text added character by character.
func (t *PrefixTree) Insert(text string) *PrefixTree {
	return t.insert([]rune(text))
}

func (t *PrefixTree) insert(rest []rune) *PrefixTree {
	if len(rest) == 0 {
		if t.terminal {
			return t
		}
		return &PrefixTree{children: t.children, level: t.level, terminal: true}
	}
	curr := rest[0]
	child, ok := t.children[curr]
	if !ok {
		child = &PrefixTree{level: t.level + 1}
	}

	children := make(map[rune]*PrefixTree, len(t.children)+1)
	for r, c := range t.children {
		children[r] = c
	}
	children[curr] = child.insert(rest[1:])
	return &PrefixTree{children: children, level: t.level, terminal: t.terminal}
}

// Contains reports whether every character of text has a matching child
// chain. The empty string is contained in every tree.
func (t *PrefixTree) Contains(text string) bool {
	node := t.walk(text)
	return node != nil
}

// ContainsWord reports whether text itself was inserted.
func (t *PrefixTree) ContainsWord(text string) bool {
	node := t.walk(text)
	return node != nil && node.terminal
}

func (t *PrefixTree) walk(text string) *PrefixTree {
	node := t
	for _, r := range text {
		next, ok := node.children[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// Level is the depth of this node below the root.
func (t *PrefixTree) Level() int { return t.level }
