package game

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/domino14/webwords/lexicon"
	"github.com/domino14/webwords/move"
)

// PlayMove validates and plays a tile placement for the current player.
// The words it forms are checked in a single call to lookup. Nothing about
// the game changes unless the whole move succeeds.
func (g *Game) PlayMove(ctx context.Context, m *move.Move, lookup lexicon.Lookup) error {
	if m == nil {
		return ErrNoMove
	}
	if g.storage.Over {
		return &GameOverError{}
	}
	if len(g.storage.Players) == 0 {
		return ErrNoPlayers
	}

	b, err := g.CreateBoard()
	if err != nil {
		return err
	}
	if !b.PlacementsValid(m) {
		return &InvalidPlacementError{}
	}

	player := g.CurrentPlayer()
	playerIdx := g.CurrentPlayerIndex()
	used := m.RackLetters()
	if !player.Letters.Contains(used) {
		// Report the first letter that can't be taken, without touching
		// the player's rack.
		return player.Letters.Copy().Take(used)
	}

	words := b.WordsForMove(m)
	wordStrings := move.WordStrings(words)
	results, err := lookup(ctx, wordStrings)
	if err != nil {
		return err
	}
	invalid := []string{}
	for i, w := range wordStrings {
		if i >= len(results) || !results[i] {
			invalid = append(invalid, w)
		}
	}
	if len(invalid) > 0 {
		return &NotInDictionaryError{Words: invalid}
	}

	if err := player.Letters.Take(used); err != nil {
		return err
	}
	bagWasEmpty := g.storage.LetterBag.Empty()
	g.appendMove(append([]move.Placement(nil), m.Placements...), bagWasEmpty)

	score := b.ScoreForWords(words)
	if m.IsBingo() {
		score += BingoBonus
	}
	player.Score += score
	g.giveLettersToPlayer(player)

	log.Debug().Str("id", g.storage.ID).Int("player", playerIdx).Strs("words", wordStrings).
		Int("score", score).Str("rack", player.Letters.String()).Msg("played-move")

	if player.Letters.Empty() {
		for i, other := range g.storage.Players {
			if i == playerIdx {
				continue
			}
			player.Score += 2 * other.Letters.ScoreOn()
		}
		g.end()
	}
	return nil
}

// PlaySwap returns letters from the current player's rack to the bag and
// draws replacements. It uses up the player's turn.
func (g *Game) PlaySwap(letters string) error {
	if g.storage.Over {
		return &GameOverError{}
	}
	if len(g.storage.Players) == 0 {
		return ErrNoPlayers
	}
	player := g.CurrentPlayer()
	swapped := []rune(letters)
	if !player.Letters.Contains(swapped) {
		return player.Letters.Copy().Take(swapped)
	}

	bagWasEmpty := g.storage.LetterBag.Empty()
	if err := player.Letters.Take(swapped); err != nil {
		return err
	}
	g.storage.LetterBag.PutBack(swapped)
	g.giveLettersToPlayer(player)
	g.appendMove([]move.Placement{}, bagWasEmpty)

	log.Debug().Str("id", g.storage.ID).Str("swapped", letters).
		Str("rack", player.Letters.String()).Msg("swapped")
	return nil
}

// SkipTurn passes the current player's turn. The game ends once every
// player has skipped in a row with the bag empty.
func (g *Game) SkipTurn() error {
	if g.storage.Over {
		return &GameOverError{}
	}
	if len(g.storage.Players) == 0 {
		return ErrNoPlayers
	}
	g.appendMove([]move.Placement{}, g.storage.LetterBag.Empty())
	log.Debug().Str("id", g.storage.ID).Int("moves", len(g.storage.Moves)).Msg("skipped")

	if !g.storage.LetterBag.Empty() {
		return nil
	}
	if g.allPlayersSkippedOnEmptyBag() {
		g.end()
	}
	return nil
}

// ResignPlayer ends the game, marking the player at idx as resigned.
// Scores are left alone.
func (g *Game) ResignPlayer(idx int) error {
	if g.storage.Over {
		return &GameOverError{}
	}
	if idx < 0 || idx >= len(g.storage.Players) {
		return &PlayerIndexError{Index: idx, NumPlayers: len(g.storage.Players)}
	}
	g.storage.Players[idx].Resigned = true
	log.Debug().Str("id", g.storage.ID).Int("player", idx).Msg("resigned")
	g.end()
	return nil
}
