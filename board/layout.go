package board

// A BonusSquare is a premium square marking. Empty squares are NoBonus.
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// StartSquare must be covered by the first move of a game. It carries
	// no multiplier.
	StartSquare BonusSquare = '*'
)

func (b BonusSquare) String() string {
	switch b {
	case Bonus3WS:
		return "tw"
	case Bonus2WS:
		return "dw"
	case Bonus3LS:
		return "tl"
	case Bonus2LS:
		return "dl"
	case StartSquare:
		return "*"
	}
	return ""
}

// BonusTile is a premium square and its position.
type BonusTile struct {
	X     int
	Y     int
	Bonus BonusSquare
}

var (
	bonusTiles []BonusTile
	bonusIndex map[Coord]BonusSquare
)

func init() {
	// One eighth of the board; the rest is mirrored.
	bonusTiles = []BonusTile{
		{0, 0, Bonus3WS},
		{1, 1, Bonus2WS},
		{2, 2, Bonus2WS},
		{3, 3, Bonus2WS},
		{4, 4, Bonus2WS},
		{5, 5, Bonus3LS},
		{6, 6, Bonus2LS},
		{7, 7, StartSquare},

		{3, 0, Bonus2LS},
		{7, 0, Bonus3WS},
		{5, 1, Bonus3LS},
		{6, 2, Bonus2LS},
		{7, 3, Bonus2LS},
	}
	// across the diagonal
	for _, bt := range append([]BonusTile(nil), bonusTiles...) {
		if bt.X == bt.Y {
			continue
		}
		bonusTiles = append(bonusTiles, BonusTile{bt.Y, bt.X, bt.Bonus})
	}
	// left to right
	for _, bt := range append([]BonusTile(nil), bonusTiles...) {
		if bt.X == Width-1-bt.X {
			continue
		}
		bonusTiles = append(bonusTiles, BonusTile{Width - 1 - bt.X, bt.Y, bt.Bonus})
	}
	// top to bottom
	for _, bt := range append([]BonusTile(nil), bonusTiles...) {
		if bt.Y == Height-1-bt.Y {
			continue
		}
		bonusTiles = append(bonusTiles, BonusTile{bt.X, Height - 1 - bt.Y, bt.Bonus})
	}

	bonusIndex = make(map[Coord]BonusSquare, len(bonusTiles))
	for _, bt := range bonusTiles {
		bonusIndex[Coord{bt.X, bt.Y}] = bt.Bonus
	}
}
