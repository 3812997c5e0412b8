package action

import (
	"context"

	"github.com/rs/zerolog/log"

	"holdem-console/internal/api"
)

// Advancer surfaces the manual continuation control between hands and
// submits the begin-next-round intent at most once per finished hand.
type Advancer struct {
	client  Submitter
	offered bool
}

func NewAdvancer(client Submitter) *Advancer {
	return &Advancer{client: client}
}

// Observe re-arms the control once a new hand is running.
func (a *Advancer) Observe(state api.GameState) {
	if state.GameInProgress {
		a.offered = false
	}
}

// ShouldOffer reports whether the next-round control is visible: the hand
// is finished, players remain seated, and it has not been pressed yet.
func (a *Advancer) ShouldOffer(state api.GameState) bool {
	return !state.GameInProgress && len(state.Players) > 0 && !a.offered
}

// Dismiss hides the control for the rest of this pause without advancing.
func (a *Advancer) Dismiss() {
	a.offered = true
}

// Advance hides the control immediately and submits the request; the fresh
// hand shows up through the ordinary poll cycle.
func (a *Advancer) Advance(ctx context.Context) error {
	a.offered = true
	if err := a.client.NextRound(ctx); err != nil {
		log.Warn().Err(err).Msg("next round request failed")
		return err
	}
	log.Info().Msg("next round requested")
	return nil
}
