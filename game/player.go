package game

import "fmt"

func (p *PlayerRecord) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	rackLetters := p.Letters.String()
	if !myturn {
		// Don't show rack letters.
		rackLetters = ""
	}
	resigned := ""
	if p.Resigned {
		resigned = " (resigned)"
	}
	return fmt.Sprintf("%4v%20v%9v %4v%v", onturn, p.User, rackLetters, p.Score, resigned)
}
