package game

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/domino14/webwords/move"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// ToDisplayText renders the board with the players, the unseen letters,
// and the last move alongside it. Only the player on turn has their rack
// shown.
func (g *Game) ToDisplayText() string {
	b, err := g.CreateBoard()
	if err != nil {
		return fmt.Sprintf("Cannot display game %s: %v", g.storage.ID, err)
	}
	bt := b.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	onturn := g.CurrentPlayerIndex()
	for pi, p := range g.storage.Players {
		addText(bts, vpadding+pi, hpadding, p.stateString(!g.storage.Over && onturn == pi))
	}

	// The bag plus every rack but the current player's.
	unseen := g.storage.LetterBag.Peek()
	for pi, p := range g.storage.Players {
		if pi != onturn {
			unseen = append(unseen, p.Letters.TilesOn()...)
		}
	}
	vpadding += len(g.storage.Players) + 1
	addText(bts, vpadding, hpadding, fmt.Sprintf("Bag + unseen: (%d)", len(unseen)))
	vpadding++

	sort.Slice(unseen, func(i, j int) bool {
		return unseen[i] < unseen[j]
	})
	bagDisp := []string{}
	cCtr := 0
	bagStr := ""
	for _, letter := range unseen {
		bagStr += string(letter) + " "
		cCtr++
		if cCtr == bagColCount {
			bagDisp = append(bagDisp, bagStr)
			bagStr = ""
			cCtr = 0
		}
	}
	if bagStr != "" {
		bagDisp = append(bagDisp, bagStr)
	}
	for i, line := range bagDisp {
		addText(bts, vpadding+i, hpadding, line)
	}
	vpadding += len(bagDisp) + 1

	addText(bts, vpadding, hpadding, fmt.Sprintf("Turn %d:", len(g.storage.Moves)+1))
	if last, ok := g.LastMove(); ok {
		summary := "skipped or swapped"
		if !last.IsEmpty() {
			summary = (&move.Move{Placements: last.Placements}).String()
		}
		addText(bts, vpadding+1, hpadding, "Last move: "+summary)
	}

	if g.storage.Over {
		addText(bts, vpadding+3, hpadding, "Game is over.")
	}

	return strings.Join(bts, "\n")
}
