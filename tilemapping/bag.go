package tilemapping

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"
)

// Randomizer picks indices for bag draws. *frand.RNG and *rand.Rand both
// satisfy it.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns a randomizer seeded from the OS entropy source.
func NewRandomizer() Randomizer {
	return frand.New()
}

// NewSeededRandomizer returns a deterministic randomizer, for replays and
// tests.
func NewSeededRandomizer(seed uint64) Randomizer {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return frand.NewCustom(s[:], 1024, 12)
}

// A Bag holds the letters that have not been dealt yet.
type Bag struct {
	tiles []rune
}

// NewBag creates a bag holding exactly the given letters.
func NewBag(letters string) (*Bag, error) {
	b := &Bag{}
	for _, letter := range letters {
		if _, ok := letterIndex(letter); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
		}
		b.tiles = append(b.tiles, NormalizeLetter(letter))
	}
	return b, nil
}

// Draw picks one letter uniformly at random and removes it from the bag.
// It returns false if the bag is empty.
func (b *Bag) Draw(rng Randomizer) (rune, bool) {
	if len(b.tiles) == 0 {
		return 0, false
	}
	idx := rng.Intn(len(b.tiles))
	letter := b.tiles[idx]
	b.tiles = append(b.tiles[:idx], b.tiles[idx+1:]...)
	return letter, true
}

// DrawAtMost draws at most n letters from the bag. It can draw fewer if
// there are fewer letters than n, and even draw no letters at all.
func (b *Bag) DrawAtMost(rng Randomizer, n int) []rune {
	drawn := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		letter, ok := b.Draw(rng)
		if !ok {
			break
		}
		drawn = append(drawn, letter)
	}
	return drawn
}

// PutBack returns letters to the bag.
func (b *Bag) PutBack(letters []rune) {
	for _, letter := range letters {
		b.tiles = append(b.tiles, NormalizeLetter(letter))
	}
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

func (b *Bag) Empty() bool {
	return len(b.tiles) == 0
}

// Peek returns a copy of the letters left in the bag.
func (b *Bag) Peek() []rune {
	ret := make([]rune, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}

func (b *Bag) String() string {
	return string(b.tiles)
}

func (b *Bag) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bag) UnmarshalText(text []byte) error {
	nb, err := NewBag(string(text))
	if err != nil {
		return err
	}
	b.tiles = nb.tiles
	return nil
}
