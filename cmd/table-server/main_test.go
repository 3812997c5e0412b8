package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holdem-console/internal/action"
	"holdem-console/internal/api"
	"holdem-console/internal/config"
)

func newTestServer(t *testing.T) *api.Client {
	t.Helper()
	srv := newServer(config.ServerConfig{StartingChips: 1000, SmallBlind: 10, BigBlind: 20})
	ts := httptest.NewServer(newRouter(srv))
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL)
}

func waitForState(t *testing.T, client *api.Client, cond func(api.GameState) bool) api.GameState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state, err := client.GameState(context.Background())
		if err == nil && cond(state) {
			return state
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("state condition not reached")
	return api.GameState{}
}

func TestGameStateBeforeStart(t *testing.T) {
	client := newTestServer(t)
	_, err := client.GameState(context.Background())
	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusNotFound {
		t.Fatalf("GameState() error = %v, want 404", err)
	}
	if statusErr.Code != "game_not_started" {
		t.Fatalf("code = %q, want game_not_started", statusErr.Code)
	}
}

func TestStartGameRejectsBadOpponentCount(t *testing.T) {
	srv := newServer(config.ServerConfig{})
	ts := httptest.NewServer(newRouter(srv))
	defer ts.Close()

	// Straight past the client-side precondition.
	resp, err := http.Post(ts.URL+"/start_game", "application/json",
		bytes.NewBufferString(`{"name":"Dana","cpu_players":0,"gemini_players":0}`))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFullHandFlow(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	err := client.StartGame(ctx, api.StartGameRequest{Name: "Dana", CPUPlayers: 1})
	if err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}

	state := waitForState(t, client, func(s api.GameState) bool { return s.HumanActionNeeded })
	if len(state.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(state.Players))
	}
	if idx, ok := state.Human(); !ok || idx != 0 {
		t.Fatalf("Human() = %d, %v", idx, ok)
	}

	// The live snapshot drives the gate: small blind facing the big blind.
	controls := action.Gate(state)
	if !controls.Fold.Enabled || !controls.Call.Enabled || controls.Check.Enabled {
		t.Fatalf("controls = %+v, want fold+call, no check", controls)
	}
	if controls.Call.Label != "Call 10" {
		t.Fatalf("call label = %q, want Call 10", controls.Call.Label)
	}

	// A hand is running; advancing is rejected.
	if err := client.NextRound(ctx); err == nil {
		t.Fatal("NextRound() accepted during a running hand")
	}

	if err := client.PlayerAction(ctx, api.ActionFold, 0); err != nil {
		t.Fatalf("PlayerAction() error = %v", err)
	}
	state = waitForState(t, client, func(s api.GameState) bool { return !s.GameInProgress })
	if state.Players[1].Chips != 1010 {
		t.Fatalf("winner chips = %d, want 1010", state.Players[1].Chips)
	}

	// Out of turn now.
	if err := client.PlayerAction(ctx, api.ActionCheck, 0); err == nil {
		t.Fatal("PlayerAction() accepted after the hand ended")
	}

	if err := client.NextRound(ctx); err != nil {
		t.Fatalf("NextRound() error = %v", err)
	}
	// The second hand opens on the rotated blinds; the opponent may fold it
	// straight away, so wait for whichever stable point comes first.
	waitForState(t, client, func(s api.GameState) bool {
		return s.HumanActionNeeded || !s.GameInProgress
	})
}
