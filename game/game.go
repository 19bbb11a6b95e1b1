// Package game holds the rules of a multi-player crossword game: dealing,
// playing, swapping, skipping, resigning, and deciding when a game is over.
// A Game keeps all of its state in a Record supplied by the caller.
package game

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/webwords/board"
	"github.com/domino14/webwords/move"
	"github.com/domino14/webwords/tilemapping"
)

const (
	RackTileLimit = 7
	BingoBonus    = 50
)

// Game is the rules engine wrapped around a Record. It has no locking;
// callers must make sure only one goroutine mutates a game at a time.
type Game struct {
	storage *Record
	rng     tilemapping.Randomizer
	// now is overridable for tests.
	now func() time.Time
}

// NewGame wraps an existing record. The record is used as-is; call Init to
// set up a fresh game in it. A missing bag or rack is treated as empty.
func NewGame(rec *Record) *Game {
	if rec.LetterBag == nil {
		rec.LetterBag = &tilemapping.Bag{}
	}
	for _, p := range rec.Players {
		if p.Letters == nil {
			p.Letters = tilemapping.NewRack()
		}
	}
	return &Game{
		storage: rec,
		rng:     tilemapping.NewRandomizer(),
		now:     time.Now,
	}
}

// NewLocalGame creates and initializes a game for players sharing one
// device. At least one name is required.
func NewLocalGame(names ...string) (*Game, error) {
	rec := &Record{
		ID:    shortuuid.New(),
		Local: true,
		Players: lo.Map(names, func(name string, _ int) *PlayerRecord {
			return &PlayerRecord{User: name}
		}),
	}
	g := NewGame(rec)
	if err := g.Init(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetRandomizer sets the source used for every bag draw.
func (g *Game) SetRandomizer(rng tilemapping.Randomizer) {
	g.rng = rng
}

// Init sets up a new game: a full bag, no moves, zeroed scores, and a
// freshly dealt rack for every player. The record is left alone if it has
// no players.
func (g *Game) Init() error {
	if len(g.storage.Players) == 0 {
		return ErrNoPlayers
	}
	g.storage.LetterBag = tilemapping.EnglishLetterDistribution().MakeBag()
	g.storage.Over = false
	g.storage.Started = g.now()
	g.storage.Moves = []MoveRecord{}

	for _, p := range g.storage.Players {
		p.Letters = tilemapping.NewRack()
		p.Score = 0
		p.Resigned = false
		g.giveLettersToPlayer(p)
	}
	log.Debug().Str("id", g.storage.ID).Int("players", len(g.storage.Players)).
		Str("bag", g.storage.LetterBag.String()).Msg("game-initialized")
	return nil
}

// giveLettersToPlayer fills the player's rack up to RackTileLimit, or until
// the bag runs out.
func (g *Game) giveLettersToPlayer(p *PlayerRecord) {
	drawn := g.storage.LetterBag.DrawAtMost(g.rng, RackTileLimit-p.Letters.NumTiles())
	for _, letter := range drawn {
		// Letters in the bag are always valid rack letters.
		_ = p.Letters.Add(letter)
	}
}

func (g *Game) Storage() *Record {
	return g.storage
}

func (g *Game) ID() string {
	return g.storage.ID
}

func (g *Game) Local() bool {
	return g.storage.Local
}

func (g *Game) LetterBag() *tilemapping.Bag {
	return g.storage.LetterBag
}

func (g *Game) Over() bool {
	return g.storage.Over
}

func (g *Game) Started() time.Time {
	return g.storage.Started
}

func (g *Game) Moves() []MoveRecord {
	return g.storage.Moves
}

func (g *Game) Players() []*PlayerRecord {
	return g.storage.Players
}

func (g *Game) NumPlayers() int {
	return len(g.storage.Players)
}

// CurrentPlayerIndex is whose turn it is. The length of the move history is
// the only record of turn order. A game with no players is always on seat 0.
func (g *Game) CurrentPlayerIndex() int {
	if len(g.storage.Players) == 0 {
		return 0
	}
	return len(g.storage.Moves) % len(g.storage.Players)
}

// CurrentPlayer returns nil for a game with no players.
func (g *Game) CurrentPlayer() *PlayerRecord {
	if len(g.storage.Players) == 0 {
		return nil
	}
	return g.storage.Players[g.CurrentPlayerIndex()]
}

// LastMove returns the most recent history entry.
func (g *Game) LastMove() (MoveRecord, bool) {
	if len(g.storage.Moves) == 0 {
		return MoveRecord{}, false
	}
	return g.storage.Moves[len(g.storage.Moves)-1], true
}

// CreateBoard replays every move in the history onto a new board. A stored
// placement that falls off the board means the record is corrupt.
func (g *Game) CreateBoard() (*board.Board, error) {
	b := board.NewBoard()
	for i, m := range g.storage.Moves {
		for _, p := range m.Placements {
			if err := b.PlaceTile(p.Tile, p.X, p.Y); err != nil {
				return nil, fmt.Errorf("replaying move %d: %w", i, err)
			}
		}
	}
	return b, nil
}

// Scores returns every player's score in seat order.
func (g *Game) Scores() []int {
	return lo.Map(g.storage.Players, func(p *PlayerRecord, _ int) int {
		return p.Score
	})
}

// Leaders returns the seats holding the top score. There is more than one
// on a tie.
func (g *Game) Leaders() []int {
	if len(g.storage.Players) == 0 {
		return nil
	}
	top := lo.Max(g.Scores())
	leaders := []int{}
	for i, p := range g.storage.Players {
		if p.Score == top {
			leaders = append(leaders, i)
		}
	}
	return leaders
}

// ShouldNaturallyEnd reports whether the game has reached an end without a
// resignation: the bag is empty, and either a rack is empty or every
// player has just skipped with the bag already empty.
func (g *Game) ShouldNaturallyEnd() bool {
	// Can't end while there are letters in the bag
	if !g.storage.LetterBag.Empty() {
		return false
	}
	if lo.SomeBy(g.storage.Players, func(p *PlayerRecord) bool { return p.Letters.Empty() }) {
		return true
	}
	return g.allPlayersSkippedOnEmptyBag()
}

func (g *Game) allPlayersSkippedOnEmptyBag() bool {
	n := len(g.storage.Players)
	// Game can't end naturally until each player has played
	if len(g.storage.Moves) < n {
		return false
	}
	return lo.EveryBy(g.storage.Moves[len(g.storage.Moves)-n:], func(m MoveRecord) bool {
		return m.IsEmpty() && m.BagWasEmpty
	})
}

func (g *Game) appendMove(placements []move.Placement, bagWasEmpty bool) {
	g.storage.Moves = append(g.storage.Moves, MoveRecord{
		Placements:  placements,
		BagWasEmpty: bagWasEmpty,
		Date:        g.now(),
	})
}

func (g *Game) end() {
	g.storage.Over = true
	log.Debug().Str("id", g.storage.ID).Ints("scores", g.Scores()).Msg("game-over")
}
