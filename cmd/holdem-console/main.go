package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"holdem-console/internal/action"
	"holdem-console/internal/api"
	"holdem-console/internal/config"
	"holdem-console/internal/logging"
	"holdem-console/internal/poll"
	"holdem-console/internal/tui"
	"holdem-console/internal/view"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		pterm.Error.Printfln("config: %v", err)
		os.Exit(1)
	}
	// Diagnostics go to a file by default; the terminal belongs to the table.
	if cfg.Log.File == "" {
		cfg.Log.File = "holdem-console.log"
	}
	if err := logging.Init(cfg.Log); err != nil {
		pterm.Error.Printfln("logging: %v", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.Client.ServerURL)
	log.Info().Str("session_id", client.SessionID()).
		Str("server", cfg.Client.ServerURL).Msg("client starting")

	ctx := context.Background()
	prompt := tui.Prompt{}

	// Setup screen. A rejected start keeps the form up; nothing else
	// happens until the authority accepts a table.
	for {
		req := prompt.SetupForm(cfg.Client.PlayerName)
		if err := client.StartGame(ctx, req); err != nil {
			log.Error().Err(err).Msg("start game failed")
			pterm.Error.Printfln("Could not start the game: %v", err)
			continue
		}
		break
	}

	updates := make(chan api.GameState, 1)
	poller := poll.New(client, poll.Config{
		Interval:    time.Duration(cfg.Client.PollIntervalMS) * time.Millisecond,
		MaxAttempts: cfg.Client.PollMaxAttempts,
		Backoff:     time.Duration(cfg.Client.PollBackoffMS) * time.Millisecond,
	}, func(state api.GameState) {
		// Latest snapshot wins; a stale one is replaced, never queued.
		for {
			select {
			case updates <- state:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	poller.OnRetry(func(attempt int, err error) {
		pterm.Warning.Printfln("Connection lost, retrying (attempt %d)…", attempt)
	})
	down := make(chan error, 1)
	poller.OnDown(func(err error) { down <- err })

	task := poller.Start(ctx)
	defer task.Stop()

	screen, err := tui.NewScreen()
	if err != nil {
		pterm.Error.Printfln("screen: %v", err)
		os.Exit(1)
	}
	defer screen.Stop()

	dispatcher := action.NewDispatcher(client, prompt)
	advancer := action.NewAdvancer(client)

	for {
		select {
		case err := <-down:
			screen.Stop()
			pterm.Error.Printfln("Connection to the table lost: %v", err)
			return
		case state := <-updates:
			dispatcher.Observe(state)
			advancer.Observe(state)
			screen.Render(view.Build(state))

			if state.HumanActionNeeded && !dispatcher.Pending() {
				controls := action.Gate(state)
				if kind, ok := prompt.SelectAction(controls); ok {
					err := dispatcher.Submit(ctx, kind)
					if err != nil && !errors.Is(err, action.ErrCanceled) {
						log.Warn().Err(err).Msg("submission failed; next poll shows the truth")
					}
				}
			}

			if advancer.ShouldOffer(state) {
				if prompt.NextRoundConfirm() {
					_ = advancer.Advance(ctx)
				} else {
					advancer.Dismiss()
				}
			}
		}
	}
}
