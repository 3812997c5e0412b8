package action

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"holdem-console/internal/api"
)

// Submitter is the slice of the API client this package needs.
type Submitter interface {
	PlayerAction(ctx context.Context, action api.ActionType, amount int64) error
	NextRound(ctx context.Context) error
}

// AmountPrompter asks the operator for a raise's intended total bet for the
// round (not a delta). ok=false means dismissed or unparseable.
type AmountPrompter interface {
	RaiseAmount(ctx context.Context) (int64, bool)
}

// ErrCanceled aborts an action before any request is sent.
var ErrCanceled = errors.New("action canceled")

// Dispatcher turns a chosen control into a submitted intent. Controls stay
// disabled from submission until the next snapshot arrives; the submission
// result itself is never shown, the next poll reveals the true state.
type Dispatcher struct {
	client  Submitter
	prompt  AmountPrompter
	pending bool
}

func NewDispatcher(client Submitter, prompt AmountPrompter) *Dispatcher {
	return &Dispatcher{client: client, prompt: prompt}
}

// Pending reports whether a submission is still awaiting its next snapshot.
func (d *Dispatcher) Pending() bool {
	return d.pending
}

// Observe re-enables controls; every fresh snapshot replaces the prior one.
func (d *Dispatcher) Observe(api.GameState) {
	d.pending = false
}

// Submit sends one action. A raise first asks for the total bet; a missing
// or non-positive amount cancels the whole action silently with no request.
func (d *Dispatcher) Submit(ctx context.Context, kind api.ActionType) error {
	amount := int64(0)
	if kind == api.ActionRaise {
		v, ok := d.prompt.RaiseAmount(ctx)
		if !ok || v <= 0 {
			log.Debug().Msg("raise canceled at amount prompt")
			return ErrCanceled
		}
		amount = v
	}

	// Disable optimistically regardless of outcome.
	d.pending = true
	if err := d.client.PlayerAction(ctx, kind, amount); err != nil {
		log.Warn().Err(err).Str("action", string(kind)).Msg("action submission failed")
		return err
	}
	log.Info().Str("action", string(kind)).Int64("amount", amount).Msg("action submitted")
	return nil
}
