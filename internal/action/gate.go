package action

import (
	"fmt"

	"holdem-console/internal/api"
)

type Control struct {
	Enabled bool
	Label   string
	Amount  int64
	AllIn   bool
}

type Controls struct {
	Fold  Control
	Check Control
	Call  Control
	Raise Control
}

// Gate derives the legal controls from the local player's bet and stack
// relative to the table's current bet. When the human does not need to act,
// or no human seat exists in the snapshot, everything stays disabled.
func Gate(state api.GameState) Controls {
	c := Controls{
		Fold:  Control{Label: "Fold"},
		Check: Control{Label: "Check"},
		Call:  Control{Label: "Call"},
		Raise: Control{Label: "Raise"},
	}

	idx, ok := state.Human()
	if !ok || !state.HumanActionNeeded {
		return c
	}
	me := state.Players[idx]
	toCall := state.CurrentBet - me.Bet

	c.Fold.Enabled = true

	if toCall <= 0 {
		c.Check.Enabled = true
	} else {
		c.Call.Enabled = true
		c.Call.Amount = toCall
		if me.Chips <= toCall {
			// Calling exhausts the stack; same action on the wire,
			// only the label changes.
			c.Call.AllIn = true
			c.Call.Label = fmt.Sprintf("All-in %d", toCall)
		} else {
			c.Call.Label = fmt.Sprintf("Call %d", toCall)
		}
	}

	required := toCall
	if required < 0 {
		required = 0
	}
	if me.Chips > required {
		c.Raise.Enabled = true
	}
	return c
}
