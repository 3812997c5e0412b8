package table

import "holdem-console/internal/api"

// logTail is how much history one snapshot carries.
const logTail = 10

// State projects the table into the wire snapshot. Hidden hands are simply
// absent from the payload; show_hand tells the client to draw placeholders.
func (t *Table) State() api.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()

	players := make([]api.PlayerState, len(t.players))
	for i, p := range t.players {
		var hand []api.Card
		if p.ShowHand {
			hand = wireCards(p.Hand)
		} else {
			hand = []api.Card{}
		}
		players[i] = api.PlayerState{
			Name:     p.Name,
			Hand:     hand,
			Chips:    p.Chips,
			Bet:      p.Bet,
			HasActed: p.HasActed,
			IsFolded: p.Folded,
			IsAllIn:  p.AllIn,
			IsCPU:    p.IsCPU,
			IsGemini: p.IsGemini,
			ShowHand: p.ShowHand,
		}
	}

	logLines := t.logLines
	if len(logLines) > logTail {
		logLines = logLines[len(logLines)-logTail:]
	}

	return api.GameState{
		Players:            players,
		CommunityCards:     wireCards(t.community),
		Pot:                t.pot,
		CurrentBet:         t.currentBet,
		CurrentPlayerIndex: t.current,
		GameStage:          string(t.stage),
		GameInProgress:     t.inProgress,
		Log:                append([]string{}, logLines...),
		HumanActionNeeded:  t.humanTurn,
	}
}

func wireCards(cards []Card) []api.Card {
	out := make([]api.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, api.Card{Suit: c.SuitToken(), Rank: c.RankToken()})
	}
	return out
}
