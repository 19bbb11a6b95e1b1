package game

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/webwords/board"
	"github.com/domino14/webwords/move"
	"github.com/domino14/webwords/tilemapping"
)

var testTime = time.Date(2016, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestGame builds a game over a hand-made record, with a fixed clock and
// a seeded randomizer.
func newTestGame(t *testing.T, bag string, racks ...string) *Game {
	t.Helper()
	letterBag, err := tilemapping.NewBag(bag)
	require.NoError(t, err)
	rec := &Record{ID: "test", LetterBag: letterBag, Moves: []MoveRecord{}}
	for i, r := range racks {
		rec.Players = append(rec.Players, &PlayerRecord{
			User:    string(rune('A' + i)),
			Letters: tilemapping.RackFromString(r),
		})
	}
	g := NewGame(rec)
	g.SetRandomizer(tilemapping.NewSeededRandomizer(10))
	g.now = func() time.Time { return testTime }
	return g
}

func TestInit(t *testing.T) {
	is := is.New(t)
	rec := &Record{Players: []*PlayerRecord{
		{User: "cesar", Score: 40, Resigned: true},
		{User: "jesse", Letters: tilemapping.RackFromString("qqq")},
	}}
	g := NewGame(rec)
	g.SetRandomizer(tilemapping.NewSeededRandomizer(1))
	is.NoErr(g.Init())

	is.Equal(g.LetterBag().TilesRemaining(), 86)
	is.True(!g.Over())
	is.True(!g.Started().IsZero())
	is.Equal(len(g.Moves()), 0)
	for _, p := range g.Players() {
		is.Equal(p.Letters.NumTiles(), RackTileLimit)
		is.Equal(p.Score, 0)
		is.True(!p.Resigned)
	}
	is.Equal(g.CurrentPlayerIndex(), 0)
	is.Equal(g.CurrentPlayer().User, "cesar")
}

func TestInitConservesTiles(t *testing.T) {
	is := is.New(t)
	g, err := NewLocalGame("a", "b", "c", "d")
	is.NoErr(err)
	is.Equal(g.LetterBag().TilesRemaining(), 100-4*RackTileLimit)

	dist := tilemapping.EnglishLetterDistribution()
	counts := map[rune]int{}
	for _, l := range g.LetterBag().Peek() {
		counts[l]++
	}
	for _, p := range g.Players() {
		for _, l := range p.Letters.TilesOn() {
			counts[l]++
		}
	}
	for _, l := range dist.Letters() {
		is.Equal(counts[l], dist.CountOf(l))
	}
}

func TestNewLocalGame(t *testing.T) {
	is := is.New(t)
	g, err := NewLocalGame("cesar", "jesse")
	is.NoErr(err)
	is.True(g.Local())
	is.True(g.ID() != "")
	is.Equal(g.NumPlayers(), 2)
	is.Equal(g.Players()[1].User, "jesse")
	is.True(g.Storage() != nil)

	other, err := NewLocalGame("cesar", "jesse")
	is.NoErr(err)
	is.True(g.ID() != other.ID())
}

func TestCreateBoard(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "", "a", "b")
	g.Storage().Moves = []MoveRecord{
		{Placements: []move.Placement{
			{Tile: tilemapping.NewTile('h'), X: 7, Y: 7},
			{Tile: tilemapping.NewTile('i'), X: 8, Y: 7},
		}},
		{Placements: []move.Placement{}},
		{Placements: []move.Placement{
			{Tile: tilemapping.NewJoker('o'), X: 7, Y: 8},
		}},
	}
	b, err := g.CreateBoard()
	is.NoErr(err)
	is.Equal(b.NumTiles(), 3)
	tile, ok := b.Tile(7, 8)
	is.True(ok)
	is.True(tile.Joker)

	// every call gives an independent board
	is.NoErr(b.PlaceTile(tilemapping.NewTile('x'), 0, 0))
	again, err := g.CreateBoard()
	is.NoErr(err)
	is.Equal(again.NumTiles(), 3)
}

func TestCreateBoardCorruptHistory(t *testing.T) {
	g := newTestGame(t, "", "a", "b")
	g.Storage().Moves = []MoveRecord{
		{Placements: []move.Placement{{Tile: tilemapping.NewTile('h'), X: 15, Y: 7}}},
	}
	_, err := g.CreateBoard()
	var oob *board.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 15, oob.X)

	calls := 0
	err = g.PlayMove(context.Background(), word(7, 7, "at"), countingLookup(&calls))
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, calls)
	assert.Contains(t, g.ToDisplayText(), "Cannot display game test")
}

func TestNoPlayers(t *testing.T) {
	is := is.New(t)
	g, err := NewLocalGame()
	is.True(errors.Is(err, ErrNoPlayers))
	is.Equal(g, nil)

	g = NewGame(&Record{})
	is.True(errors.Is(g.Init(), ErrNoPlayers))
	is.Equal(g.LetterBag().TilesRemaining(), 0)
	is.Equal(g.CurrentPlayerIndex(), 0)
	is.Equal(g.CurrentPlayer(), nil)

	calls := 0
	is.True(errors.Is(g.PlayMove(context.Background(), word(7, 7, "at"), countingLookup(&calls)), ErrNoPlayers))
	is.True(errors.Is(g.PlaySwap("a"), ErrNoPlayers))
	is.True(errors.Is(g.SkipTurn(), ErrNoPlayers))
	is.Equal(calls, 0)
	is.Equal(len(g.Moves()), 0)
	is.True(strings.Contains(g.ToDisplayText(), "Bag + unseen: (0)"))
}

func TestMissingBagAndRacks(t *testing.T) {
	is := is.New(t)
	rec := &Record{}
	is.NoErr(json.Unmarshal([]byte(`{"_id":"old","letterBag":null,"players":[{"user":"a"},{"user":"b"}]}`), rec))
	is.Equal(rec.LetterBag, nil)

	g := NewGame(rec)
	is.True(g.LetterBag().Empty())
	for _, p := range g.Players() {
		is.True(p.Letters.Empty())
	}

	// both players skip with nothing left to draw
	is.NoErr(g.SkipTurn())
	is.True(!g.Over())
	is.NoErr(g.SkipTurn())
	is.True(g.Over())
	is.True(g.ShouldNaturallyEnd())
}

func TestShouldNaturallyEnd(t *testing.T) {
	is := is.New(t)

	g := newTestGame(t, "e", "", "abc")
	// letters left in the bag
	is.True(!g.ShouldNaturallyEnd())

	g = newTestGame(t, "", "", "abc")
	is.True(g.ShouldNaturallyEnd())

	g = newTestGame(t, "", "d", "abc")
	is.True(!g.ShouldNaturallyEnd())
	g.Storage().Moves = []MoveRecord{{BagWasEmpty: true}}
	is.True(!g.ShouldNaturallyEnd())
	g.Storage().Moves = append(g.Storage().Moves, MoveRecord{BagWasEmpty: true})
	is.True(g.ShouldNaturallyEnd())

	g.Storage().Moves[0].BagWasEmpty = false
	is.True(!g.ShouldNaturallyEnd())
}

func TestScoresAndLeaders(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "", "a", "b", "c")
	for i, s := range []int{30, 45, 45} {
		g.Players()[i].Score = s
	}
	is.Equal(g.Scores(), []int{30, 45, 45})
	is.Equal(g.Leaders(), []int{1, 2})

	is.Equal(NewGame(&Record{}).Leaders(), []int(nil))
}

func TestLastMove(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "abc", "a", "b")
	_, ok := g.LastMove()
	is.True(!ok)
	is.NoErr(g.SkipTurn())
	last, ok := g.LastMove()
	is.True(ok)
	is.True(last.IsEmpty())
	is.Equal(last.Date, testTime)
}

func TestRecordJSON(t *testing.T) {
	g := newTestGame(t, "ab?", "qi", "z?")
	g.Storage().Moves = []MoveRecord{{
		Placements: []move.Placement{{Tile: tilemapping.NewJoker('e'), X: 7, Y: 7}},
		Date:       testTime,
	}}
	data, err := json.Marshal(g.Storage())
	require.NoError(t, err)
	js := string(data)
	for _, field := range []string{`"_id":"test"`, `"letterBag":"ab?"`, `"letters":"iq"`,
		`"letters":"?z"`, `"bagWasEmpty":false`, `"letter":"e"`, `"isJoker":true`, `"x":7`} {
		assert.Contains(t, js, field)
	}

	rec := &Record{}
	require.NoError(t, json.Unmarshal(data, rec))
	assert.Equal(t, "iq", rec.Players[0].Letters.String())
	assert.Equal(t, 3, rec.LetterBag.TilesRemaining())
	assert.True(t, rec.Moves[0].Placements[0].Tile.Joker)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, "xyz", "qi", "za")
	text := g.ToDisplayText()
	is.True(strings.Contains(text, "Bag + unseen: (5)"))
	// only the player on turn shows a rack
	is.True(strings.Contains(text, "iq"))
	is.True(!strings.Contains(text, "az"))

	is.NoErr(g.ResignPlayer(0))
	is.True(strings.Contains(g.ToDisplayText(), "Game is over."))
}
