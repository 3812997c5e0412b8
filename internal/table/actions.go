package table

import "holdem-console/internal/api"

// HumanAction applies the local player's intent. Accepted only while the
// hand is waiting on the human; the gate on the client side keeps illegal
// presses out, so validation here mirrors the authority's trusting stance.
func (t *Table) HumanAction(kind api.ActionType, amount int64) error {
	t.mu.Lock()
	if !t.humanTurn {
		t.mu.Unlock()
		return ErrNotYourTurn
	}
	t.humanTurn = false
	t.applyLocked(kind, amount)
	t.mu.Unlock()
	go t.run()
	return nil
}

func (t *Table) applyLocked(kind api.ActionType, amount int64) {
	p := t.players[t.current]

	switch kind {
	case api.ActionFold:
		p.Folded = true
		t.logLocked("%s folds.", p.Name)
	case api.ActionCheck:
		t.logLocked("%s checks.", p.Name)
	case api.ActionCall:
		toCall := t.currentBet - p.Bet
		if toCall >= p.Chips {
			t.logLocked("%s goes all-in to call.", p.Name)
			p.Bet += p.Chips
			p.Chips = 0
			p.AllIn = true
		} else {
			t.logLocked("%s calls %d.", p.Name, toCall)
			p.Chips -= toCall
			p.Bet += toCall
		}
	case api.ActionRaise:
		// amount is the intended total bet for the round, clamped to
		// [min raise, stack]. Raising the whole stack is an all-in.
		minRaise := t.rules.BigBlind
		if t.currentBet > 0 {
			minRaise = t.currentBet * 2
		}
		if amount < minRaise {
			amount = minRaise
		}
		if amount > p.Chips+p.Bet {
			amount = p.Chips + p.Bet
		}
		if amount == p.Chips+p.Bet {
			p.AllIn = true
			t.logLocked("%s raises all-in to %d!", p.Name, amount)
		} else {
			t.logLocked("%s raises to %d.", p.Name, amount)
		}
		added := amount - p.Bet
		p.Chips -= added
		p.Bet = amount
		t.currentBet = amount
		for _, other := range t.players {
			if other != p && !other.Folded && !other.AllIn {
				other.HasActed = false
			}
		}
	}

	p.HasActed = true
	t.current = (t.current + 1) % len(t.players)
}

// decideLocked is the scripted opponent policy. CPU players are passive:
// they call most bets and never raise. Gemini players imitate the model
// backed seats of the hosted game with a bolder mix.
func (t *Table) decideLocked(p *Player) (api.ActionType, int64) {
	toCall := t.currentBet - p.Bet

	if p.IsGemini {
		raiseTo := t.currentBet * 2
		if raiseTo < t.rules.BigBlind {
			raiseTo = t.rules.BigBlind
		}
		if toCall > 0 {
			switch r := t.rng.Float64(); {
			case r < 0.6 || toCall >= p.Chips:
				return api.ActionCall, 0
			case r < 0.8:
				return api.ActionRaise, raiseTo
			default:
				return api.ActionFold, 0
			}
		}
		if t.rng.Float64() < 0.3 {
			return api.ActionRaise, raiseTo
		}
		return api.ActionCheck, 0
	}

	if toCall > 0 {
		if t.rng.Float64() < 0.7 || toCall >= p.Chips {
			return api.ActionCall, 0
		}
		return api.ActionFold, 0
	}
	return api.ActionCheck, 0
}
