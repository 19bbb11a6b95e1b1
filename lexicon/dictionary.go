package lexicon

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash"
)

// MinWordLength is the shortest string that can be a word.
const MinWordLength = 2

// node is a trie node. Arcs are kept sorted by letter.
type node struct {
	arcs     []*arc
	terminal bool
}

type arc struct {
	letter      rune
	destination *node
}

type arcPtrSlice []*arc

func (a arcPtrSlice) Len() int           { return len(a) }
func (a arcPtrSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a arcPtrSlice) Less(i, j int) bool { return a[i].letter < a[j].letter }

// Does the node contain an arc for the letter c? Return the arc if so.
func (n *node) containsArc(c rune) *arc {
	i := sort.Search(len(n.arcs), func(i int) bool {
		return n.arcs[i].letter >= c
	})
	if i < len(n.arcs) && n.arcs[i].letter == c {
		return n.arcs[i]
	}
	return nil
}

// Creates an arc from this node for c, and returns the node it points to.
func (n *node) createArcFrom(c rune) *node {
	newNode := &node{}
	n.arcs = append(n.arcs, &arc{letter: c, destination: newNode})
	sort.Sort(arcPtrSlice(n.arcs))
	return newNode
}

// Dictionary is an immutable prefix trie over a word list. It is safe for
// concurrent reads once built.
type Dictionary struct {
	name     string
	root     *node
	numWords int
	checksum uint64
}

// NewDictionary indexes words. Words are lower-cased; anything shorter
// than MinWordLength and any duplicate is dropped.
func NewDictionary(name string, words []string) *Dictionary {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = normalize(strings.TrimSpace(w))
		if len([]rune(w)) < MinWordLength {
			continue
		}
		normalized = append(normalized, w)
	}
	sort.Strings(normalized)

	d := &Dictionary{name: name, root: &node{}}
	h := xxhash.New()
	prev := ""
	for i, w := range normalized {
		if i > 0 && w == prev {
			continue
		}
		prev = w
		d.insert(w)
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	d.checksum = h.Sum64()
	return d
}

func (d *Dictionary) insert(word string) {
	cur := d.root
	for _, c := range word {
		if a := cur.containsArc(c); a != nil {
			cur = a.destination
		} else {
			cur = cur.createArcFrom(c)
		}
	}
	if !cur.terminal {
		cur.terminal = true
		d.numWords++
	}
}

func (d *Dictionary) Name() string {
	return d.name
}

// HasWord is Includes; it lets a Dictionary serve as a Lexicon.
func (d *Dictionary) HasWord(word string) bool {
	return d.Includes(word)
}

// Includes reports whether word is in the dictionary. Strings shorter than
// MinWordLength never are.
func (d *Dictionary) Includes(word string) bool {
	if len([]rune(word)) < MinWordLength {
		return false
	}
	cur := d.root
	for _, c := range normalize(word) {
		a := cur.containsArc(c)
		if a == nil {
			return false
		}
		cur = a.destination
	}
	return cur.terminal
}

// IncludesMulti checks each word, returning results in the same order.
func (d *Dictionary) IncludesMulti(words []string) []bool {
	results := make([]bool, len(words))
	for i, w := range words {
		results[i] = d.Includes(w)
	}
	return results
}

func (d *Dictionary) NumWords() int {
	return d.numWords
}

// Checksum identifies the indexed word list. Two dictionaries built from
// the same words in any order and case share a checksum.
func (d *Dictionary) Checksum() uint64 {
	return d.checksum
}
